package messages

const (
	prefixKey        = "cmdhelp"
	HelpPrefixKey    = prefixKey + ".help"
	MessagePrefixKey = prefixKey + ".msg"
)

// Section headings
const (
	HelpSummaryKey     = HelpPrefixKey + ".summary"
	HelpUsageKey       = HelpPrefixKey + ".usage"
	HelpDescriptionKey = HelpPrefixKey + ".description"
	HelpOptionsKey     = HelpPrefixKey + ".options"
)

// UIMessages contains keys for fallback texts
const (
	MsgNoHelpKey        = MessagePrefixKey + ".no_help"
	MsgNoDescriptionKey = MessagePrefixKey + ".no_description"
)
