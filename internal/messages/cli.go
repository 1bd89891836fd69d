package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "jdkctl"
	// RootShort is the short description for the root command.
	RootShort    = "Switch the active JDK installation"
	RootLong     = "jdkctl inventories the JDKs installed under a root directory and switches the\nactive one by updating JAVA_HOME, the machine search path, and the .jar file\nassociation. Run without a subcommand for an interactive menu."
	RootPathFlag = "Root directory scanned for JDK installations"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// ListUse is the list command name.
	ListUse       = "list"
	ListShort     = "List the JDK installations found under the root directory"
	ListHeaderFmt = "JDK installations under %s:\n"
	ListEntryFmt  = "  %s\n"
	ListEmptyFmt  = "No JDK installations found under %s\n"

	// UseUse is the use command usage.
	UseUse   = "use <name>"
	UseShort = "Make the named JDK installation the active one"

	// CurrentUse is the current command name.
	CurrentUse   = "current"
	CurrentShort = "Show the active JDK installation and .jar association"

	// MenuHeaderFmt introduces the interactive selection menu.
	MenuHeaderFmt    = "JDK installations under %s:\n"
	MenuEntryFmt     = "  [%d] %s\n"
	MenuPromptFmt    = "Select a JDK [0-%d]: "
	MenuNoCandidatesFmt = "no JDK installations found under %s; nothing to select"
	MenuReadFailedFmt   = "read selection: %w"
	MenuInvalidFmt   = "invalid selection %q: enter a number between 0 and %d"
	MenuNotATerminal = "interactive selection requires a terminal; run 'jdkctl list' and 'jdkctl use <name>' instead"

	// PrivilegeRequired aborts the run when the process is not elevated.
	PrivilegeRequired = "jdkctl must run with administrator privileges"

	// ConfigWarnFmt reports a config file that could not be read.
	ConfigWarnFmt = "Warning: ignoring config file: %v\n"
)
