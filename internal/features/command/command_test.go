package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKinds(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"/help", KindHelp},
		{"  /HELP  ", KindHelp},
		{"/help me", KindNone},
		{"/uptime", KindUptime},
		{"/broadcast hi", KindBroadcast},
		{"/broadcast", KindBroadcast},
		{"/broadcast\tnews", KindBroadcast},
		{"/broadcasting", KindNone},
		{"/console -on", KindConsoleOn},
		{"/console -off", KindConsoleOff},
		{"/console", KindConsoleUnknown},
		{"/vip -list", KindVIPList},
		{"/vip #1,#2", KindVIPSelect},
		{"/vip -show", KindVIPShow},
		{"/vip -delete #1", KindVIPDelete},
		{"/vip -delete", KindVIPDelete},
		{"/vip -reset", KindVIPReset},
		{"/vip", KindVIPUnknown},
		{"/vipx", KindVIPUnknown},
		{"/stock -on", KindStockOn},
		{"/stock -off", KindStockOff},
		{"/Stock", KindStockShow},
		{"/stock now", KindStockUnknown},
		{"/dt -show", KindUsersShow},
		{"hello", KindNone},
		{"", KindNone},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text).Kind)
		})
	}
}

func TestParseBroadcastKeepsCase(t *testing.T) {
	cmd := Parse("  /Broadcast   Restock at NOON  ")
	assert.Equal(t, KindBroadcast, cmd.Kind)
	assert.Equal(t, "Restock at NOON", cmd.Message)
}

func TestParseBroadcastWithoutBody(t *testing.T) {
	for _, text := range []string{"/broadcast", "/broadcast    ", "  /BROADCAST\n"} {
		cmd := Parse(text)
		assert.Equal(t, KindBroadcast, cmd.Kind, text)
		assert.Empty(t, cmd.Message, text)
	}
}

func TestParsePositions(t *testing.T) {
	assert.Equal(t, []int{2, 5}, Parse("/vip #2,#5").Positions)
	assert.Equal(t, []int{1, 3}, Parse("/vip -delete #1 and #3").Positions)
	assert.Empty(t, Parse("/vip #x").Positions)
	assert.Equal(t, []int{12}, Positions("#12#"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "vip_select", KindVIPSelect.String())
	assert.Equal(t, "kind(99)", Kind(99).String())
}
