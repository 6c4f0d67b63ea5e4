package config

// Flags of the root command.
var (
	InPath    string
	OutPath   string
	Filename  string
	Summary   bool
	LogFormat string
)

// Flags of the addr command.
var (
	AddressFile string
	BestMatch   bool
)

// Flags of the batch command.
var JobsFile string
