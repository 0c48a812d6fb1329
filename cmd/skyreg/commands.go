package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/tarantool/go-skynet/config"
	"github.com/tarantool/go-skynet/crypto"
	"github.com/tarantool/go-skynet/keys"
	"github.com/tarantool/go-skynet/registry"
)

var errUsage = errors.New("usage")

type seedFlags struct {
	seedHex    string
	mnemonic   string
	passphrase string
}

func (s *seedFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&s.seedHex, "seed-hex", "", "seed as hex")
	fs.StringVar(&s.mnemonic, "mnemonic", "", "BIP-39 mnemonic")
	fs.StringVar(&s.passphrase, "passphrase", "", "mnemonic passphrase")
}

func (s *seedFlags) seed() (keys.Seed, error) {
	switch {
	case s.seedHex != "" && s.mnemonic != "":
		return nil, fmt.Errorf("%w: --seed-hex and --mnemonic are mutually exclusive", errUsage)
	case s.seedHex != "":
		seed, err := hex.DecodeString(s.seedHex)
		if err != nil {
			return nil, fmt.Errorf("invalid --seed-hex: %w", err)
		}

		return seed, nil
	case s.mnemonic != "":
		return keys.SeedFromMnemonic(s.mnemonic, s.passphrase) //nolint:wrapcheck
	default:
		return nil, fmt.Errorf("%w: --seed-hex or --mnemonic is required", errUsage)
	}
}

type portalFlags struct {
	configPath string
	portalURL  string
	apiKey     string
	hashed     bool
	verbose    bool
}

func (p *portalFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&p.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&p.portalURL, "portal", "", "portal URL")
	fs.StringVar(&p.apiKey, "api-key", "", "portal API key")
	fs.BoolVar(&p.hashed, "hashed", false, "the data key is already hashed")
	fs.BoolVar(&p.verbose, "verbose", false, "log requests")
}

func (p *portalFlags) config() (config.Config, error) {
	cfg := config.Default()

	if p.configPath != "" {
		loaded, err := config.Load(p.configPath)
		if err != nil {
			return cfg, err //nolint:wrapcheck
		}

		cfg = loaded
	}

	if p.portalURL != "" {
		cfg.Portal.URL = p.portalURL
	}

	if p.apiKey != "" {
		cfg.Portal.APIKey = p.apiKey
	}

	if p.hashed {
		cfg.Registry.HashedDataKey = true
	}

	return cfg, nil
}

func (p *portalFlags) logger() *zap.Logger {
	if !p.verbose {
		return zap.NewNop()
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

// registry builds a registry from the flags. The returned function must be
// called when done.
func (p *portalFlags) registry() (*registry.Registry, config.Config, func(), error) {
	cfg, err := p.config()
	if err != nil {
		return nil, cfg, func() {}, err
	}

	logger := p.logger()

	reg, closeCache, err := cfg.NewRegistry(cfg.NewClient(logger), logger, nil)
	if err != nil {
		return nil, cfg, func() {}, err //nolint:wrapcheck
	}

	return reg, cfg, func() {
		_ = closeCache()
		_ = logger.Sync()
	}, nil
}

func fail(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)

	if errors.Is(err, errUsage) {
		return 2
	}

	return 1
}

func cmdKeygen(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("keygen", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var (
		mnemonic   bool
		passphrase string
	)

	fs.BoolVar(&mnemonic, "mnemonic", false, "generate a BIP-39 mnemonic")
	fs.StringVar(&passphrase, "passphrase", "", "mnemonic passphrase")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if !mnemonic {
		keyPair, seed, err := keys.GenerateKeyPairAndSeed(keys.DefaultEntropy, keys.DefaultSeedLength)
		if err != nil {
			return fail(errOut, err)
		}

		fmt.Fprintf(out, "seed: %s\npublic key: %s\n", hex.EncodeToString(seed), keyPair.PublicKey)

		return 0
	}

	words, seed, err := keys.NewMnemonicSeed(keys.DefaultEntropy, passphrase)
	if err != nil {
		return fail(errOut, err)
	}

	fmt.Fprintf(out, "mnemonic: %s\npublic key: %s\n", words, keys.DeriveKeyPair(seed).PublicKey)

	return 0
}

func cmdDerive(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("derive", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var (
		seedOpts seedFlags
		child    string
	)

	seedOpts.register(fs)
	fs.StringVar(&child, "child", "", "derive the child seed with this label first")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	seed, err := seedOpts.seed()
	if err != nil {
		return fail(errOut, err)
	}

	if child != "" {
		seed, err = keys.DeriveChildSeed(seed, []byte(child))
		if err != nil {
			return fail(errOut, err)
		}

		fmt.Fprintf(out, "child seed: %s\n", hex.EncodeToString(seed))
	}

	fmt.Fprintf(out, "public key: %s\n", keys.DeriveKeyPair(seed).PublicKey)

	return 0
}

type entryOutput struct {
	DataKey   string `json:"datakey"`
	Revision  uint64 `json:"revision"`
	Data      string `json:"data"`
	Signature string `json:"signature"`
}

func cmdGet(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var (
		portalOpts portalFlags
		publicKey  string
		dataKey    string
	)

	portalOpts.register(fs)
	fs.StringVar(&publicKey, "public-key", "", "owner public key, ed25519:<hex>")
	fs.StringVar(&dataKey, "datakey", "", "data key")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if publicKey == "" || dataKey == "" {
		fmt.Fprintln(errOut, "usage: skyreg get --public-key ed25519:<hex> --datakey <key>")
		return 2
	}

	owner, err := crypto.ParsePublicKey(publicKey)
	if err != nil {
		return fail(errOut, err)
	}

	reg, cfg, done, err := portalOpts.registry()
	if err != nil {
		return fail(errOut, err)
	}
	defer done()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	signed, err := reg.Get(ctx, owner, dataKey, cfg.CallOptions()...)
	if err != nil {
		return fail(errOut, err)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(entryOutput{
		DataKey:   signed.Entry.DataKey,
		Revision:  signed.Entry.Revision,
		Data:      hex.EncodeToString(signed.Entry.Data),
		Signature: signed.Signature.Hex(),
	}); err != nil {
		return fail(errOut, err)
	}

	return 0
}

func cmdSet(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var (
		seedOpts   seedFlags
		portalOpts portalFlags
		dataKey    string
		data       string
		dataHex    string
		revision   uint64
	)

	seedOpts.register(fs)
	portalOpts.register(fs)
	fs.StringVar(&dataKey, "datakey", "", "data key")
	fs.StringVar(&data, "data", "", "entry data as text")
	fs.StringVar(&dataHex, "data-hex", "", "entry data as hex")
	fs.Uint64Var(&revision, "revision", 0, "entry revision")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Exactly one payload flag; an explicit --data "" publishes empty data.
	payloadFlags := 0

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "data" || f.Name == "data-hex" {
			payloadFlags++
		}
	})

	if dataKey == "" || payloadFlags != 1 {
		fmt.Fprintln(errOut, "usage: skyreg set --datakey <key> --revision <n> (--data <text> | --data-hex <hex>)")
		return 2
	}

	payload := []byte(data)

	if dataHex != "" {
		decoded, err := hex.DecodeString(strings.TrimPrefix(dataHex, "0x"))
		if err != nil {
			return fail(errOut, fmt.Errorf("invalid --data-hex: %w", err))
		}

		payload = decoded
	}

	seed, err := seedOpts.seed()
	if err != nil {
		return fail(errOut, err)
	}

	keyPair := keys.DeriveKeyPair(seed)

	reg, cfg, done, err := portalOpts.registry()
	if err != nil {
		return fail(errOut, err)
	}
	defer done()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entry := registry.Entry{DataKey: dataKey, Data: payload, Revision: revision}
	if err := reg.Set(ctx, keyPair, entry, cfg.CallOptions()...); err != nil {
		return fail(errOut, err)
	}

	fmt.Fprintf(out, "published %s revision %d under %s\n", dataKey, revision, keyPair.PublicKey)

	return 0
}
