package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/vaultforge/argon2/pkg/argon2"
	"github.com/vaultforge/argon2/pkg/argon2policy"
	"github.com/vaultforge/argon2/pkg/tui"
	"github.com/vaultforge/argon2/pkg/version"
)

func main() {
	if len(os.Args) < 2 {
		showHelp()
		return
	}

	cmd := os.Args[1]

	switch cmd {
	case "hash":
		handleHash()
	case "verify":
		handleVerify()
	case "phc-encode":
		handlePHCEncode()
	case "phc-decode":
		handlePHCDecode()
	case "gen-salt":
		handleGenSalt()
	case "bench":
		handleBench()
	case "version", "--version", "-v":
		fmt.Println(version.GetInfo().String())
	case "help", "--help", "-h":
		showHelp()
	default:
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Unknown command: %s\n", cmd)))
		showHelp()
		os.Exit(1)
	}
}

func showHelp() {
	help := `argon2cli - RFC 9106 Argon2 password hashing

COMMANDS:
    argon2cli hash [profile]            Hash a passphrase (profile: interactive|moderate|sensitive)
    argon2cli verify                    Verify a passphrase against a PHC string
    argon2cli phc-encode <variant>      Print a PHC string for fixed test parameters
    argon2cli phc-decode <phc-string>   Decode a PHC string into its parameters
    argon2cli gen-salt [n]              Generate n random bytes of salt, base64-encoded
    argon2cli bench [profile]           Measure hash latency for a profile
    argon2cli version                   Show build information
    argon2cli help                      Show this help message

EXAMPLES:
    argon2cli hash moderate
    argon2cli verify
    argon2cli phc-decode '$argon2id$v=19$m=65536,t=3,p=4$c29tZXNhbHQ$RdescudvJCsgt3ub+b+dWRWJTmaaJObG'
    argon2cli gen-salt 16
    argon2cli bench sensitive
`
	fmt.Println(help)
}

func handleHash() {
	profileName := "moderate"
	if len(os.Args) >= 3 {
		profileName = os.Args[2]
	}

	fmt.Print("Enter passphrase: ")
	password, err := tui.ReadPassword()
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Error reading passphrase: %v\n", err)))
		os.Exit(1)
	}

	salt, err := argon2.GenerateSalt(16)
	if err != nil {
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Error generating salt: %v\n", err)))
		os.Exit(1)
	}

	params, err := argon2policy.Profile(profileName, salt, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Error building parameters: %v\n", err)))
		os.Exit(1)
	}

	tag, err := argon2.Hash(params, []byte(password))
	if err != nil {
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Error hashing: %v\n", err)))
		os.Exit(1)
	}

	phc, err := argon2.Encode(params, tag)
	if err != nil {
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Error encoding PHC string: %v\n", err)))
		os.Exit(1)
	}

	fmt.Println(tui.ColorSuccess(phc))
}

func handleVerify() {
	fmt.Print("Enter PHC string: ")
	var phc string
	if _, err := fmt.Scanln(&phc); err != nil {
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Error reading PHC string: %v\n", err)))
		os.Exit(1)
	}

	params, tag, err := argon2.Decode(phc)
	if err != nil {
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Error decoding PHC string: %v\n", err)))
		os.Exit(1)
	}

	fmt.Print("Enter passphrase: ")
	password, err := tui.ReadPassword()
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Error reading passphrase: %v\n", err)))
		os.Exit(1)
	}

	ok, err := argon2.Verify(params, []byte(password), tag)
	if err != nil {
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Error verifying: %v\n", err)))
		os.Exit(1)
	}

	if ok {
		fmt.Println(tui.ColorSuccess("match"))
	} else {
		fmt.Println(tui.ColorError("no match"))
		os.Exit(1)
	}
}

func handlePHCEncode() {
	variantName := "argon2id"
	if len(os.Args) >= 3 {
		variantName = os.Args[2]
	}

	var variant argon2.Variant
	switch variantName {
	case "argon2d":
		variant = argon2.Argon2d
	case "argon2i":
		variant = argon2.Argon2i
	case "argon2id":
		variant = argon2.Argon2id
	default:
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Unknown variant: %s\n", variantName)))
		os.Exit(1)
	}

	salt, err := argon2.GenerateSalt(16)
	if err != nil {
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Error generating salt: %v\n", err)))
		os.Exit(1)
	}

	params, err := argon2.New(variant, argon2.V13, 64*1024, 3, 4, 32, salt, nil, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Error building parameters: %v\n", err)))
		os.Exit(1)
	}

	tag, err := argon2.Hash(params, []byte("example-passphrase"))
	if err != nil {
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Error hashing: %v\n", err)))
		os.Exit(1)
	}

	phc, err := argon2.Encode(params, tag)
	if err != nil {
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Error encoding: %v\n", err)))
		os.Exit(1)
	}

	fmt.Println(phc)
}

func handlePHCDecode() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: argon2cli phc-decode <phc-string>")
		os.Exit(1)
	}

	params, tag, err := argon2.Decode(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Error decoding: %v\n", err)))
		os.Exit(1)
	}

	fmt.Printf("variant:     %s\n", params.Variant())
	fmt.Printf("version:     0x%02x\n", uint32(params.Version()))
	fmt.Printf("memory_kb:   %d\n", params.MemoryKB())
	fmt.Printf("time:        %d\n", params.Time())
	fmt.Printf("parallelism: %d\n", params.Lanes())
	fmt.Printf("salt_len:    %d\n", len(params.Salt()))
	fmt.Printf("tag_len:     %d\n", len(tag))
}

func handleGenSalt() {
	n := 16
	if len(os.Args) >= 3 {
		if parsed, err := strconv.Atoi(os.Args[2]); err == nil && parsed > 0 {
			n = parsed
		}
	}

	salt, err := argon2.GenerateSalt(n)
	if err != nil {
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Error generating salt: %v\n", err)))
		os.Exit(1)
	}

	fmt.Println(tui.ColorInfo(base64.RawStdEncoding.EncodeToString(salt)))
}

func handleBench() {
	profileName := "moderate"
	if len(os.Args) >= 3 {
		profileName = os.Args[2]
	}

	salt, err := argon2.GenerateSalt(16)
	if err != nil {
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Error generating salt: %v\n", err)))
		os.Exit(1)
	}

	params, err := argon2policy.Profile(profileName, salt, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Error building parameters: %v\n", err)))
		os.Exit(1)
	}

	start := time.Now()
	if _, err := argon2.Hash(params, []byte("benchmark-passphrase")); err != nil {
		fmt.Fprintf(os.Stderr, tui.ColorError(fmt.Sprintf("Error hashing: %v\n", err)))
		os.Exit(1)
	}
	elapsed := time.Since(start)

	fmt.Println(tui.ColorInfo(fmt.Sprintf("profile=%s memory_kb=%d time=%d parallelism=%d elapsed=%s",
		profileName, params.MemoryKB(), params.Time(), params.Lanes(), elapsed)))
}
