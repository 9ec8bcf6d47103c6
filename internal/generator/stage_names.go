package generator

// StageName identifies a generation stage.
type StageName string

// Canonical stage names.
const (
	StagePrepareOutput StageName = "prepare_output"
	StageLoadSources   StageName = "load_sources"
	StageRenderPages   StageName = "render_pages"
	StageColorSheet    StageName = "color_sheet"
)
