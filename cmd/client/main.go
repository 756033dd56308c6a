// Command client es un cliente de terminal para la API del directorio.
//
//	client register --username alice --email a@x.com
//	client login --email a@x.com
//	client list
//	client create --name Bob --company Acme --city NYC --phone +15551234567
//	client update 1 --name Bob --company Acme --city LA --phone +15551234567
//	client delete 1
//	client me
//	client logout
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/client/api"
	"github.com/jhoicas/Directorio-api/internal/client/session"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const defaultAPIURL = "http://localhost:3000/api"

// readPassword permite reemplazar term.ReadPassword en tests.
var readPassword = func() ([]byte, error) { return term.ReadPassword(int(os.Stdin.Fd())) }

// env permite inyectar un transport en tests.
type env struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	transport http.RoundTripper
}

func main() {
	os.Exit(run(os.Args[1:], env{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}))
}

func run(args []string, e env) int {
	global := pflag.NewFlagSet("client", pflag.ContinueOnError)
	global.SetOutput(e.stderr)
	global.SetInterspersed(false)
	apiURL := global.String("api", envOr("EMPLOYEE_API_URL", defaultAPIURL), "URL base de la API (incluye /api)")
	tokenFile := global.String("token-file", "", "archivo del token (por defecto $HOME/.employee-directory/token)")
	if err := global.Parse(args); err != nil {
		return 2
	}
	rest := global.Args()
	if len(rest) == 0 {
		usage(e.stderr)
		return 2
	}

	path := *tokenFile
	if path == "" {
		p, err := session.DefaultTokenPath()
		if err != nil {
			fmt.Fprintln(e.stderr, "error:", err)
			return 1
		}
		path = p
	}
	notified := false
	sess, err := session.New(session.NewFileTokenStore(path), session.WithOnLogout(func(r session.LogoutReason) {
		if r == session.ReasonRejected {
			notified = true
			fmt.Fprintln(e.stderr, "Session expired, please log in again: client login --email <email>")
		}
	}))
	if err != nil {
		fmt.Fprintln(e.stderr, "error:", err)
		return 1
	}
	client := api.New(*apiURL, sess, e.transport)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := dispatch(ctx, client, rest[0], rest[1:], e); err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			if !notified {
				fmt.Fprintln(e.stderr, "Not logged in: client login --email <email>")
			}
			return 1
		}
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintln(e.stderr, "error:", apiErr.Message)
		} else {
			fmt.Fprintln(e.stderr, "error:", err)
		}
		return 1
	}
	return 0
}

func dispatch(ctx context.Context, c *api.Client, cmd string, args []string, e env) error {
	switch cmd {
	case "register":
		fs := newFlagSet(cmd, e)
		username := fs.String("username", "", "nombre de usuario")
		email := fs.String("email", "", "email")
		password := fs.String("password", "", "password (si se omite se pide por terminal)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		pw, err := promptPassword(*password, e)
		if err != nil {
			return err
		}
		out, err := c.Register(ctx, dto.RegisterRequest{Username: *username, Email: *email, Password: pw})
		if err != nil {
			return err
		}
		fmt.Fprintf(e.stdout, "registered as %s (id %d)\n", out.Username, out.ID)
		return nil

	case "login":
		fs := newFlagSet(cmd, e)
		email := fs.String("email", "", "email")
		password := fs.String("password", "", "password (si se omite se pide por terminal)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		pw, err := promptPassword(*password, e)
		if err != nil {
			return err
		}
		out, err := c.Login(ctx, dto.LoginRequest{Email: *email, Password: pw})
		if err != nil {
			return err
		}
		fmt.Fprintf(e.stdout, "logged in as %s\n", out.Username)
		return nil

	case "logout":
		changed, err := c.Logout()
		if err != nil {
			return err
		}
		if changed {
			fmt.Fprintln(e.stdout, "logged out")
		} else {
			fmt.Fprintln(e.stdout, "not logged in")
		}
		return nil

	case "me":
		out, err := c.Me(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(e.stdout, "%d\t%s\t%s\n", out.ID, out.Username, out.Email)
		return nil

	case "list":
		list, err := c.ListEmployees(ctx)
		if err != nil {
			return err
		}
		printEmployees(e.stdout, list)
		return nil

	case "create":
		fs := newFlagSet(cmd, e)
		in := employeeFlags(fs)
		if err := fs.Parse(args); err != nil {
			return err
		}
		out, err := c.CreateEmployee(ctx, *in)
		if err != nil {
			return err
		}
		printEmployees(e.stdout, []dto.EmployeeResponse{*out})
		return nil

	case "update":
		fs := newFlagSet(cmd, e)
		in := employeeFlags(fs)
		if err := fs.Parse(args); err != nil {
			return err
		}
		id, err := parseID(fs.Args())
		if err != nil {
			return err
		}
		out, err := c.UpdateEmployee(ctx, id, *in)
		if err != nil {
			return err
		}
		printEmployees(e.stdout, []dto.EmployeeResponse{*out})
		return nil

	case "delete":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		msg, err := c.DeleteEmployee(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.stdout, msg)
		return nil

	default:
		usage(e.stderr)
		return fmt.Errorf("comando desconocido %q", cmd)
	}
}

func newFlagSet(name string, e env) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

func employeeFlags(fs *pflag.FlagSet) *dto.EmployeeRequest {
	in := &dto.EmployeeRequest{}
	fs.StringVar(&in.Name, "name", "", "nombre")
	fs.StringVar(&in.Company, "company", "", "empresa")
	fs.StringVar(&in.City, "city", "", "ciudad")
	fs.StringVar(&in.PhoneNumber, "phone", "", "teléfono")
	return in
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errors.New("se espera exactamente un id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido %q", args[0])
	}
	return id, nil
}

// promptPassword usa el flag si viene; si stdin es terminal pide sin eco, si no lee una línea.
func promptPassword(flagValue string, e env) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	fmt.Fprint(e.stderr, "Password: ")
	defer fmt.Fprintln(e.stderr)
	if f, ok := e.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		pw, err := readPassword()
		if err != nil {
			return "", fmt.Errorf("leer password: %w", err)
		}
		return string(pw), nil
	}
	line, err := bufio.NewReader(e.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("leer password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printEmployees(w io.Writer, list []dto.EmployeeResponse) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOMPANY\tCITY\tPHONE")
	for _, emp := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", emp.ID, emp.Name, emp.Company, emp.City, emp.PhoneNumber)
	}
	tw.Flush()
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "uso: client [--api URL] [--token-file PATH] <register|login|logout|me|list|create|update|delete> [flags]")
}
