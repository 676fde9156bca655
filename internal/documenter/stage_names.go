package documenter

// StageName is a strongly-typed identifier for a run stage.
type StageName string

const (
	StagePrimary          StageName = "primary_docs"
	StageModuleDocs       StageName = "module_docs"
	StageConfigurationDoc StageName = "configuration_doc"
	StageApplicationIndex StageName = "application_index"
	StageRelocate         StageName = "relocate"
)
