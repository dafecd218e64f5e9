// Package shell is the line-based command loop around package toyrsa.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arvid220u/toyrsa/toyrsa"
)

const (
	prompt       = "Enter a command. Type help for the list of commands."
	unknownReply = "No such command found."
	helpText     = `1. new_keys - generate a new keypair.
2. show_keys - show the current keys.
3. encrypt - encrypt a message.
4. decrypt - decrypt a message.
5. exit - quit.`
)

// Shell holds the current keypair and talks to the user over in and out.
// It is not safe for concurrent use.
type Shell struct {
	params toyrsa.Params
	random io.Reader
	in     *bufio.Reader
	out    io.Writer
	keys   *toyrsa.KeyPair
}

// New returns a shell generating keys with cfg's parameters. random is the
// source for keys and delimiters; nil means crypto/rand.
func New(cfg *Config, random io.Reader, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		params: cfg.Params(),
		random: random,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

func (s *Shell) logf(format string, a ...interface{}) {
	header := "[shell] "
	if s.keys != nil {
		header = fmt.Sprintf("[shell %s] ", s.keys.Id)
	}
	toyrsa.DPrintf(header+format, a...)
}

// Keys returns the keypair currently in use, nil before Run.
func (s *Shell) Keys() *toyrsa.KeyPair {
	return s.keys
}

// Run generates a keypair and then serves commands until exit or the end
// of the input. Errors are only returned for failed key generation or
// encryption, which point at a broken random source.
func (s *Shell) Run() error {
	if err := s.newKeys(); err != nil {
		return err
	}
	for {
		fmt.Fprintln(s.out, prompt)
		cmd, ok := s.readLine()
		if !ok {
			return nil
		}
		s.logf("command %q", cmd)

		switch strings.TrimSpace(cmd) {
		case "new_keys":
			if err := s.newKeys(); err != nil {
				return err
			}
		case "show_keys":
			s.showKeys()
		case "encrypt":
			if err := s.encrypt(); err != nil {
				return err
			}
		case "decrypt":
			s.decrypt()
		case "help":
			fmt.Fprintln(s.out, helpText)
		case "exit":
			return nil
		default:
			fmt.Fprintln(s.out, unknownReply)
		}
	}
}

// readLine returns the next line without its line ending. ok is false once
// the input is exhausted.
func (s *Shell) readLine() (line string, ok bool) {
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (s *Shell) newKeys() error {
	kp, err := s.params.GenerateKeyPair(s.random)
	if err != nil {
		return fmt.Errorf("generate keys: %w", err)
	}
	s.keys = kp
	s.logf("new keypair")
	return nil
}

func (s *Shell) showKeys() {
	fmt.Fprintf(s.out, "Key id: %s\n", s.keys.Id)
	fmt.Fprintf(s.out, "Public key: e = %s, n = %s\n", s.keys.Public.E(), s.keys.Public.N())
	fmt.Fprintf(s.out, "Private key: d = %s, n = %s\n", s.keys.Private.D(), s.keys.Private.N())
}

func (s *Shell) encrypt() error {
	fmt.Fprintln(s.out, "Enter the message to encrypt:")
	text, _ := s.readLine()
	ct, err := toyrsa.EncryptText(s.random, text, s.keys.Public)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}
	fmt.Fprintf(s.out, "Encrypted: %s\n", ct)
	return nil
}

func (s *Shell) decrypt() {
	fmt.Fprintln(s.out, "Enter the encrypted message:")
	text, _ := s.readLine()
	pt, err := toyrsa.DecryptText(strings.TrimSpace(text), s.keys.Private)
	if err != nil {
		fmt.Fprintf(s.out, "Decrypt failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Decrypted: %s\n", pt)
}
