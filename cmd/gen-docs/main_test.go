package main

import (
	"strings"
	"testing"

	"github.com/stigoleg/countdown/internal/config"
)

func TestFishFlagLine(t *testing.T) {
	tests := []struct {
		name string
		flag flagDef
		want string
	}{
		{
			name: "short and long with argument",
			flag: flagDef{Short: "-m", Long: "--minutes", Arg: "<string>", Desc: "Start \"now\""},
			want: "complete -c countdown -s m -l minutes -r -d \"Start \\\"now\\\"\"\n",
		},
		{
			name: "long switch",
			flag: flagDef{Long: "--mute", Desc: "Disable all sounds"},
			want: "complete -c countdown -l mute -f -d \"Disable all sounds\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fishFlagLine(tt.flag); got != tt.want {
				t.Errorf("fishFlagLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestZshFlagName(t *testing.T) {
	if got := zFlagName(flagDef{Short: "-m", Long: "--minutes", Arg: "<string>"}); got != "--minutes=" {
		t.Errorf("zFlagName() = %q, want %q", got, "--minutes=")
	}
	if got := zArgSuffix("<file>"); got != ":value:file" {
		t.Errorf("zArgSuffix() = %q, want %q", got, ":value:file")
	}
}

func TestSynopsisCoversAllFlags(t *testing.T) {
	got := synopsis(config.Flags())
	for _, f := range config.Flags() {
		want := strings.ReplaceAll(f.Long, "-", "\\-")
		if !strings.Contains(got, want) {
			t.Errorf("synopsis missing %q: %s", want, got)
		}
	}
}
