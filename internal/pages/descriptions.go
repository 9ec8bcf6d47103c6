package pages

var breakpointDescriptions = map[string]string{
	"xxs": "Smallest mobile",
	"xs":  "Small mobile",
	"sm":  "Medium mobile (Bootstrap standard)",
	"md":  "Large mobile and tablet (Bootstrap standard)",
	"lg":  "Tablet and small desktop (Bootstrap standard)",
	"xl":  "Desktop (Bootstrap standard)",
	"xxl": "Large desktop (Bootstrap standard)",
	"3xl": "Wide desktop",
	"4xl": "Ultra-wide desktop",
}

var spacingDescriptions = map[string]string{
	"spacer": "Base spacing unit, the default for margin and padding",
}

var fontDescriptions = map[string]string{
	"basic":     "Default body font",
	"monospace": "Monospace font",
	"popup":     "Popup and dialog font",
	"title":     "Heading font",
	"title-2":   "Secondary heading font",
}

var additiveBorderDescriptions = map[string]string{
	"border":          "Add all borders",
	"border-0":        "Remove all borders",
	"border-top":      "Add top border",
	"border-top-0":    "Remove top border",
	"border-end":      "Add right border",
	"border-end-0":    "Remove right border",
	"border-bottom":   "Add bottom border",
	"border-bottom-0": "Remove bottom border",
	"border-start":    "Add left border",
	"border-start-0":  "Remove left border",
}

var radiusValues = map[string]string{
	"rounded":        "4px",
	"rounded-0":      "0",
	"rounded-1":      "2px",
	"rounded-2":      "4px",
	"rounded-3":      "6px",
	"rounded-4":      "8px",
	"rounded-5":      "12px",
	"rounded-circle": "50%",
	"rounded-pill":   "999px",
}

var radiusSides = map[string]string{
	"rounded-top":    "Round the top corners only",
	"rounded-end":    "Round the right corners only",
	"rounded-bottom": "Round the bottom corners only",
	"rounded-start":  "Round the left corners only",
}

type helperInfo struct {
	Description string
	CSS         string
}

var stackHelpers = map[string]helperInfo{
	"vstack": {"Vertical stack (flex-direction: column)", "display: flex; flex-direction: column; flex: 1 1 auto; align-self: stretch;"},
	"hstack": {"Horizontal stack (flex-direction: row, align-items: center)", "display: flex; flex-direction: row; align-items: center; align-self: stretch;"},
}

var verticalRuleHelpers = map[string]helperInfo{
	"vr": {"Vertical divider", "display: inline-block; align-self: stretch; width: 1px; min-height: 1em; background-color: currentColor; opacity: 0.25;"},
}

type mixinInfo struct {
	Description string
	Usage       string
}

var mixinDescriptions = map[string]mixinInfo{
	"rounded":                    {"Generic border-radius, each corner can be set", "@include rounded(8px);"},
	"rounded-none":               {"border-radius: 0", "@include rounded-none;"},
	"rounded-xs":                 {"border-radius: 2px", "@include rounded-xs;"},
	"rounded-sm":                 {"border-radius: 4px", "@include rounded-sm;"},
	"rounded-md":                 {"border-radius: 6px", "@include rounded-md;"},
	"rounded-lg":                 {"border-radius: 8px", "@include rounded-lg;"},
	"rounded-xl":                 {"border-radius: 12px", "@include rounded-xl;"},
	"rounded-2xl":                {"border-radius: 16px", "@include rounded-2xl;"},
	"rounded-3xl":                {"border-radius: 24px", "@include rounded-3xl;"},
	"rounded-full":               {"border-radius: 999px", "@include rounded-full;"},
	"border-radius":              {"Legacy border-radius, prefer rounded", "@include border-radius(8px);"},
	"backdrop":                   {"Apply a backdrop-filter", "@include backdrop(blur(10px));"},
	"blur":                       {"Backdrop blur", "@include blur(10px);"},
	"filter":                     {"Apply a CSS filter", "@include filter(brightness, 80%);"},
	"drop-shadow":                {"Drop shadow filter", "@include drop-shadow(4px 5px 7px rgba(0, 0, 0, .6));"},
	"button-hover":               {"Adjust brightness on button hover", "@include button-hover(120%);"},
	"clearfix":                   {"Clear floated children", "@include clearfix;"},
	"ellipsis":                   {"Truncate text with an ellipsis after the given number of lines", "@include ellipsis(2);"},
	"transform":                  {"Apply a CSS transform", "@include transform(rotate(45deg));"},
	"rotate":                     {"Rotate", "@include rotate(45);"},
	"scale":                      {"Scale", "@include scale(1.2);"},
	"translate":                  {"Translate", "@include translate(10px, 20px);"},
	"skew":                       {"Skew", "@include skew(10, 20);"},
	"transform-origin":           {"Set the transform origin", "@include transform-origin(center);"},
	"transition":                 {"Apply a CSS transition", "@include transition(0.3s);"},
	"transition-property":        {"Transition properties", "@include transition-property(background-color, color);"},
	"transition-duration":        {"Transition duration", "@include transition-duration(0.3s);"},
	"transition-timing-function": {"Transition timing function", "@include transition-timing-function(ease-in-out);"},
	"transition-delay":           {"Transition delay", "@include transition-delay(0.2s);"},
}
