package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig  = "config"
	FlagNoColor = "no-color"
	FlagQuiet   = "quiet"
	FlagDebug   = "debug"
	FlagJSON    = "json"
	FlagBase    = "base"
	FlagCopy    = "copy"
	FlagAddr    = "addr"
	FlagForce   = "force"

	// Flag descriptions
	DescConfig  = "Path to config file"
	DescNoColor = "Disable colored output"
	DescQuiet   = "Suppress non-error output"
	DescDebug   = "Enable debug logging"
	DescJSON    = "Output as JSON"
	DescBase    = "Page URL the share link points to (default: server.public_url)"
	DescCopy    = "Copy the result to the clipboard"
	DescAddr    = "Listen address (default: server.addr)"
	DescForce   = "Overwrite an existing file"
)

// defaultShareBase is used for share links when neither --base nor
// server.public_url is set.
const defaultShareBase = "http://localhost:8080/"

// shareBase picks the share link base: flag, then configuration, then the
// local server default.
func shareBase(flag string) string {
	if flag != "" {
		return flag
	}
	if public := currentConfig().Server.PublicURL; public != "" {
		return public
	}
	return defaultShareBase
}
