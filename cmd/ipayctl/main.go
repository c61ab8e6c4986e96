package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"ipay4u/config"
	"ipay4u/internal/domain/constants"
	"ipay4u/internal/infra/auth"
	"ipay4u/pkg/notifyclient"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Supported subcommands:
// - admin-token: Issue a JWT for the /admin API
// - sign:        Print signed headers for a /notify body
// - hash-secret: Bcrypt a registration secret for auth.registration.secretHash
// - notify:      Send a signed payment notification

func main() {
	adminTokenCmd := flag.NewFlagSet("admin-token", flag.ExitOnError)
	signCmd := flag.NewFlagSet("sign", flag.ExitOnError)
	hashSecretCmd := flag.NewFlagSet("hash-secret", flag.ExitOnError)
	notifyCmd := flag.NewFlagSet("notify", flag.ExitOnError)

	// admin-token parameters
	adminSecret := adminTokenCmd.String("secret", os.Getenv("AUTH_ADMIN_SECRET"), "HMAC secret shared with the server (auth.admin.secret)")
	adminIssuer := adminTokenCmd.String("issuer", "ipay4u", "Token issuer (auth.admin.issuer)")
	adminSubject := adminTokenCmd.String("subject", "", "Subject UUID (random when empty)")
	adminRoles := adminTokenCmd.String("roles", constants.RoleAdmin, "Comma separated roles")
	adminTTL := adminTokenCmd.Duration("ttl", time.Hour, "Token lifetime")

	// sign parameters
	signToken := signCmd.String("token", os.Getenv("IPAY4U_DEVICE_TOKEN"), "Device token")
	signBody := signCmd.String("body", "", "Raw request body")
	signBodyFile := signCmd.String("body-file", "", "Read the request body from a file")
	signNonce := signCmd.String("nonce", "", "Nonce (random when empty)")
	signTimestamp := signCmd.Int64("timestamp", 0, "Unix seconds (now when zero)")

	// notify parameters
	notifyURL := notifyCmd.String("url", "http://localhost:3000", "Server base URL")
	notifyToken := notifyCmd.String("token", os.Getenv("IPAY4U_DEVICE_TOKEN"), "Device token")
	notifyTxnID := notifyCmd.String("txn", "", "client_txn_id (random when empty)")
	notifyBank := notifyCmd.String("bank", "", "Bank name")
	notifyAmount := notifyCmd.Float64("amount", 0, "Amount")
	notifyTitle := notifyCmd.String("title", "", "Notification title")
	notifyMessage := notifyCmd.String("message", "", "Notification message")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := ctlFlags{
		AdminToken: adminTokenFlags{
			cmd:     adminTokenCmd,
			secret:  adminSecret,
			issuer:  adminIssuer,
			subject: adminSubject,
			roles:   adminRoles,
			ttl:     adminTTL,
		},
		Sign: signFlags{
			cmd:       signCmd,
			token:     signToken,
			body:      signBody,
			bodyFile:  signBodyFile,
			nonce:     signNonce,
			timestamp: signTimestamp,
		},
		HashSecret: hashSecretFlags{
			cmd: hashSecretCmd,
		},
		Notify: notifyFlags{
			cmd:     notifyCmd,
			url:     notifyURL,
			token:   notifyToken,
			txnID:   notifyTxnID,
			bank:    notifyBank,
			amount:  notifyAmount,
			title:   notifyTitle,
			message: notifyMessage,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	AdminToken adminTokenFlags
	Sign       signFlags
	HashSecret hashSecretFlags
	Notify     notifyFlags
}

type adminTokenFlags struct {
	cmd     *flag.FlagSet
	secret  *string
	issuer  *string
	subject *string
	roles   *string
	ttl     *time.Duration
}

type signFlags struct {
	cmd       *flag.FlagSet
	token     *string
	body      *string
	bodyFile  *string
	nonce     *string
	timestamp *int64
}

type hashSecretFlags struct {
	cmd *flag.FlagSet
}

type notifyFlags struct {
	cmd     *flag.FlagSet
	url     *string
	token   *string
	txnID   *string
	bank    *string
	amount  *float64
	title   *string
	message *string
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "admin-token":
		return handleAdminToken(flags)
	case "sign":
		return handleSign(flags)
	case "hash-secret":
		return handleHashSecret(flags)
	case "notify":
		return handleNotify(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleAdminToken(flags *ctlFlags) error {
	f := flags.AdminToken
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse admin-token flags")
	}

	subject := uuid.New()
	if *f.subject != "" {
		parsed, err := uuid.Parse(*f.subject)
		if err != nil {
			return errors.Wrap(err, "invalid -subject")
		}
		subject = parsed
	}

	cfg := &config.Config{}
	cfg.Auth.Admin.Secret = *f.secret
	cfg.Auth.Admin.Issuer = *f.issuer

	tokens, err := auth.NewJWTService(cfg)
	if err != nil {
		return errors.Wrap(err, "set -secret or AUTH_ADMIN_SECRET")
	}

	token, err := tokens.GenerateAdminToken(subject, splitRoles(*f.roles), *f.ttl)
	if err != nil {
		return errors.Wrap(err, "failed to issue admin token")
	}

	fmt.Println(token)

	return nil
}

func handleSign(flags *ctlFlags) error {
	f := flags.Sign
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse sign flags")
	}
	if *f.token == "" {
		return errors.New("-token is required")
	}

	body := []byte(*f.body)
	if *f.bodyFile != "" {
		data, err := os.ReadFile(*f.bodyFile)
		if err != nil {
			return errors.Wrap(err, "failed to read body file")
		}
		body = data
	}

	timestamp := *f.timestamp
	if timestamp == 0 {
		timestamp = time.Now().Unix()
	}
	nonce := *f.nonce
	if nonce == "" {
		nonce = uuid.NewString()
	}

	ts := strconv.FormatInt(timestamp, 10)
	signature := auth.NewHMACSigner().Sign(*f.token, body, ts, nonce)

	fmt.Printf("Authorization: Bearer %s\n", *f.token)
	fmt.Printf("%s: %s\n", notifyclient.HeaderTimestamp, ts)
	fmt.Printf("%s: %s\n", notifyclient.HeaderNonce, nonce)
	fmt.Printf("%s: %s\n", notifyclient.HeaderSignature, signature)

	return nil
}

func handleHashSecret(flags *ctlFlags) error {
	f := flags.HashSecret
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse hash-secret flags")
	}
	if f.cmd.NArg() != 1 {
		return errors.New("usage: ipayctl hash-secret <secret>")
	}

	hash, err := auth.NewBcryptHasher().Hash(f.cmd.Arg(0))
	if err != nil {
		return errors.Wrap(err, "failed to hash secret")
	}

	fmt.Println(hash)

	return nil
}

func handleNotify(ctx context.Context, flags *ctlFlags) error {
	f := flags.Notify
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse notify flags")
	}
	if *f.token == "" {
		return errors.New("-token is required")
	}

	client := notifyclient.New(*f.url, notifyclient.WithToken(*f.token))
	result, err := client.Notify(ctx, &notifyclient.Payment{
		ClientTxnID: *f.txnID,
		Bank:        *f.bank,
		Amount:      *f.amount,
		Title:       *f.title,
		Message:     *f.message,
	})
	if err != nil {
		return errors.Wrap(err, "notify failed")
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Println(string(out))

	return nil
}

func splitRoles(raw string) []string {
	var roles []string
	for role := range strings.SplitSeq(raw, ",") {
		if role = strings.TrimSpace(role); role != "" {
			roles = append(roles, role)
		}
	}

	return roles
}

func printUsage() {
	fmt.Println("Usage: ipayctl <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  admin-token  Issue a JWT for the /admin API")
	fmt.Println("  sign         Print signed headers for a /notify body")
	fmt.Println("  hash-secret  Bcrypt a registration secret")
	fmt.Println("  notify       Send a signed payment notification")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ipayctl admin-token -secret $AUTH_ADMIN_SECRET -ttl 30m")
	fmt.Println("  ipayctl sign -token $TOKEN -body '{\"client_txn_id\":\"t1\",\"amount\":10}'")
	fmt.Println("  ipayctl hash-secret s3cret")
	fmt.Println("  ipayctl notify -url http://localhost:3000 -token $TOKEN -bank KBank -amount 150.25")
}
