// Package machine executes commands and writes files on the test target.
//
// The target is the virtual machine booted from an installer image; the
// harness reaches it over ssh. Calls are synchronous and blocking, and no
// failure is retried.
package machine

import (
	"bytes"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"golang.org/x/crypto/ssh"

	"github.com/osci-tools/anaconda-webui-harness/internal/config"
	"github.com/osci-tools/anaconda-webui-harness/internal/messages"
)

// Machine is the remote-execution surface the harness drives.
type Machine interface {
	// Execute runs a shell command on the target and returns its stdout.
	Execute(command string) (string, error)
	// WriteFile writes content to path on the target with the given mode.
	WriteFile(path string, content string, perm os.FileMode) error
}

// SSH implements Machine over a single ssh connection.
type SSH struct {
	client *ssh.Client
	target string
}

// Dial connects to the target described by cfg.
func Dial(cfg config.Machine) (*SSH, error) {
	if strings.TrimSpace(cfg.Address) == "" {
		return nil, errors.New(messages.MachineAddressRequired)
	}
	if strings.TrimSpace(cfg.User) == "" {
		return nil, errors.New(messages.MachineUserRequired)
	}

	signer, err := loadIdentity(cfg.Identity)
	if err != nil {
		return nil, err
	}

	target := net.JoinHostPort(cfg.Address, strconv.Itoa(cfg.Port))
	clientConfig := &ssh.ClientConfig{
		User: cfg.User,
		Auth: []ssh.AuthMethod{ssh.PublicKeys(signer)},
		// Test VMs are rebuilt constantly; their host keys are throwaway.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}

	client, err := ssh.Dial("tcp", target, clientConfig)
	if err != nil {
		return nil, fmt.Errorf(messages.MachineDialFmt, target, err)
	}
	return &SSH{client: client, target: target}, nil
}

// loadIdentity reads and parses the private key at path, expanding a leading ~.
func loadIdentity(path string) (ssh.Signer, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf(messages.MachineExpandPathFmt, path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf(messages.MachineReadIdentityFmt, expanded, err)
	}
	signer, err := ssh.ParsePrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf(messages.MachineParseKeyFmt, expanded, err)
	}
	return signer, nil
}

// Execute runs command on the target and returns its stdout. Stderr is
// folded into the returned error on failure.
func (m *SSH) Execute(command string) (string, error) {
	session, err := m.client.NewSession()
	if err != nil {
		return "", fmt.Errorf(messages.MachineSessionFmt, m.target, err)
	}
	defer func() { _ = session.Close() }()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr
	if err := session.Run(command); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return stdout.String(), fmt.Errorf(messages.MachineExecuteFmt, command, m.target, err)
	}
	return stdout.String(), nil
}

// WriteFile streams content to path on the target and sets its mode.
func (m *SSH) WriteFile(path string, content string, perm os.FileMode) error {
	session, err := m.client.NewSession()
	if err != nil {
		return fmt.Errorf(messages.MachineSessionFmt, m.target, err)
	}
	defer func() { _ = session.Close() }()

	session.Stdin = strings.NewReader(content)
	var stderr bytes.Buffer
	session.Stderr = &stderr
	if err := session.Run(WriteFileCommand(path, perm)); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return fmt.Errorf(messages.MachineWriteFileFmt, path, m.target, err)
	}
	return nil
}

// Close tears down the underlying ssh connection.
func (m *SSH) Close() error {
	return m.client.Close()
}

// WriteFileCommand builds the remote command WriteFile runs: the payload
// arrives on stdin, then the mode is fixed up.
func WriteFileCommand(path string, perm os.FileMode) string {
	quoted := ShellQuote(path)
	return fmt.Sprintf("mkdir -p \"$(dirname %s)\" && cat > %s && chmod %04o %s", quoted, quoted, perm.Perm(), quoted)
}

// ShellQuote wraps s in single quotes, escaping embedded single quotes.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
