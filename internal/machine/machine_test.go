package machine

import (
	"strings"
	"testing"

	"github.com/osci-tools/anaconda-webui-harness/internal/config"
)

func TestShellQuote(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/mnt/sysroot/root/keyfile", "'/mnt/sysroot/root/keyfile'"},
		{"plain", "'plain'"},
		{"with space", "'with space'"},
		{"don't", `'don'\''t'`},
	}
	for _, tc := range cases {
		if got := ShellQuote(tc.in); got != tc.want {
			t.Errorf("ShellQuote(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestWriteFileCommand(t *testing.T) {
	cmd := WriteFileCommand("/mnt/sysroot/root/keyfile", 0o400)
	if !strings.Contains(cmd, "cat > '/mnt/sysroot/root/keyfile'") {
		t.Errorf("command %q does not stream stdin to the target path", cmd)
	}
	if !strings.Contains(cmd, "chmod 0400 '/mnt/sysroot/root/keyfile'") {
		t.Errorf("command %q does not fix up the mode", cmd)
	}
	if !strings.HasPrefix(cmd, "mkdir -p") {
		t.Errorf("command %q does not create parent directories", cmd)
	}
}

func TestDialRejectsIncompleteConfig(t *testing.T) {
	if _, err := Dial(config.Machine{User: "root", Port: 22}); err == nil {
		t.Error("expected error for missing address")
	}
	if _, err := Dial(config.Machine{Address: "127.0.0.2", Port: 22}); err == nil {
		t.Error("expected error for missing user")
	}
}

func TestDialMissingIdentity(t *testing.T) {
	cfg := config.Machine{
		Address:  "127.0.0.2",
		Port:     22,
		User:     "root",
		Identity: "/nonexistent/id_rsa",
	}
	_, err := Dial(cfg)
	if err == nil {
		t.Fatal("expected error for missing identity file")
	}
	if !strings.Contains(err.Error(), "/nonexistent/id_rsa") {
		t.Errorf("error %q does not name the identity path", err)
	}
}
