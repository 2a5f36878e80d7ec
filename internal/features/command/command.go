package command

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Kind identifies a parsed command.
type Kind int

const (
	KindNone Kind = iota
	KindHelp
	KindUptime
	KindBroadcast
	KindConsoleOn
	KindConsoleOff
	KindConsoleUnknown
	KindVIPList
	KindVIPSelect
	KindVIPShow
	KindVIPDelete
	KindVIPReset
	KindVIPUnknown
	KindStockOn
	KindStockOff
	KindStockShow
	KindStockUnknown
	KindUsersShow
)

var kindNames = map[Kind]string{
	KindNone:           "none",
	KindHelp:           "help",
	KindUptime:         "uptime",
	KindBroadcast:      "broadcast",
	KindConsoleOn:      "console_on",
	KindConsoleOff:     "console_off",
	KindConsoleUnknown: "console_unknown",
	KindVIPList:        "vip_list",
	KindVIPSelect:      "vip_select",
	KindVIPShow:        "vip_show",
	KindVIPDelete:      "vip_delete",
	KindVIPReset:       "vip_reset",
	KindVIPUnknown:     "vip_unknown",
	KindStockOn:        "stock_on",
	KindStockOff:       "stock_off",
	KindStockShow:      "stock_show",
	KindStockUnknown:   "stock_unknown",
	KindUsersShow:      "users_show",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Command is one parsed inbound text.
type Command struct {
	Kind Kind
	// Message is the body of a broadcast.
	Message string
	// Positions are the 1-based #n tokens of a VIP select or delete.
	Positions []int
}

const broadcastCommand = "/broadcast"

var positionPattern = regexp.MustCompile(`#(\d+)`)

// Parse matches text against the command table. Matching runs on a trimmed,
// lower-cased copy; arguments are taken from the text as sent.
func Parse(text string) Command {
	raw := strings.TrimSpace(text)
	clean := strings.ToLower(raw)

	switch {
	case clean == "/help":
		return Command{Kind: KindHelp}
	case clean == "/uptime":
		return Command{Kind: KindUptime}
	case isBroadcast(clean):
		return Command{Kind: KindBroadcast, Message: broadcastBody(raw)}
	case strings.HasPrefix(clean, "/vip"):
		return parseVIP(raw, clean)
	case strings.HasPrefix(clean, "/stock"):
		return parseStock(clean)
	case strings.HasPrefix(clean, "/console"):
		return parseConsole(clean)
	case clean == "/dt -show":
		return Command{Kind: KindUsersShow}
	}
	return Command{Kind: KindNone}
}

// isBroadcast matches "/broadcast" alone or followed by whitespace and a body.
func isBroadcast(clean string) bool {
	if !strings.HasPrefix(clean, broadcastCommand) {
		return false
	}
	rest := clean[len(broadcastCommand):]
	return rest == "" || unicode.IsSpace(rune(rest[0]))
}

// broadcastBody is the trimmed text after the command word. It may be empty.
func broadcastBody(raw string) string {
	if len(raw) < len(broadcastCommand) || !strings.EqualFold(raw[:len(broadcastCommand)], broadcastCommand) {
		return ""
	}
	return strings.TrimSpace(raw[len(broadcastCommand):])
}

func parseVIP(raw, clean string) Command {
	switch {
	case clean == "/vip -list":
		return Command{Kind: KindVIPList}
	case strings.HasPrefix(clean, "/vip #"):
		return Command{Kind: KindVIPSelect, Positions: Positions(raw)}
	case clean == "/vip -reset":
		return Command{Kind: KindVIPReset}
	case clean == "/vip -show":
		return Command{Kind: KindVIPShow}
	case strings.HasPrefix(clean, "/vip -delete"):
		return Command{Kind: KindVIPDelete, Positions: Positions(raw)}
	}
	return Command{Kind: KindVIPUnknown}
}

func parseStock(clean string) Command {
	switch clean {
	case "/stock -on":
		return Command{Kind: KindStockOn}
	case "/stock -off":
		return Command{Kind: KindStockOff}
	case "/stock":
		return Command{Kind: KindStockShow}
	}
	return Command{Kind: KindStockUnknown}
}

func parseConsole(clean string) Command {
	switch clean {
	case "/console -on":
		return Command{Kind: KindConsoleOn}
	case "/console -off":
		return Command{Kind: KindConsoleOff}
	}
	return Command{Kind: KindConsoleUnknown}
}

// Positions extracts every #<digits> token of text in order.
func Positions(text string) []int {
	matches := positionPattern.FindAllStringSubmatch(text, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}
