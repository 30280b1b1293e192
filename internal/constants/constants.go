package constants

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "polyscan"

	// ConfigFileName is the default config file name
	ConfigFileName = ".polyscan.toml"

	// EnvVarPrefix is the prefix for environment variables
	EnvVarPrefix = "POLYSCAN"
)

// Output format constants
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
	OutputFormatHTML = "html"
)

// Progress reporting defaults
const (
	// DefaultProgressStride emits a progress event every Nth processed file.
	// The final file always emits regardless of stride.
	DefaultProgressStride = 5
)

// DefaultHTMLReportName is the report path used when --output is not given.
const DefaultHTMLReportName = "polyscan-report.html"
