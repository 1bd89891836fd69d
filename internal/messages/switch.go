package messages

// Switch procedure and status report messages.
const (
	UseUnknownCandidateFmt = "no JDK named %q under %s; run 'jdkctl list' to see what is installed"
	UseActivatedFmt        = "Activated %s (%s)\n"
	UseHomeWriteFailedFmt  = "write %s: %w"
	UsePathReadFailedFmt   = "read search path: %w"
	UsePathWriteFailedFmt  = "write search path: %w"

	AssocSkippedFmt     = "Warning: %s not found; leaving the .jar association unchanged\n"
	AssocWriteFailedFmt = "Warning: write %s association key: %v\n"
	AssocExtLabel       = "extension"
	AssocCommandLabel   = "open-command"
	AssocIconLabel      = "icon"

	MirrorFailedFmt = "mirror %s into process environment: %w"

	VerifyHeaderFmt = "%s:\n"
	VerifyFailedFmt = "Warning: could not run %s: %v\n"

	CurrentUnset          = "JAVA_HOME is not set; run 'jdkctl use <name>' to activate a JDK\n"
	CurrentHomeFmt        = "JAVA_HOME = %s\n"
	CurrentNoAssociation  = "No .jar association found\n"
	CurrentAssociationFmt = ".jar -> %s, opened with %s (icon %s)\n"
)
