package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/kong"
)

const balancedFile = `#FLAGGA 0
#SIETYP 4
#FNAMN "Exempelbolaget AB"
#KONTO 1930 "Bank"
#KONTO 3041 "Sales"
#VER A 1 20240115 "Invoice"
{
#TRANS 1930 {} 1250.00
#TRANS 3041 {} -1250.00
}
`

const unbalancedFile = `#FNAMN "Exempelbolaget AB"
#VER A 1 20240115 "Skewed"
{
#TRANS 1930 {} 100.00
#TRANS 3041 {} -90.00
}
`

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.se")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

// runCommand parses and runs the CLI against the given arguments,
// capturing stdout and stderr.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var app struct {
		Commands
	}
	var stdout, stderr bytes.Buffer

	parser, err := kong.New(&app,
		kong.Name("sie"),
		kong.Writers(&stdout, &stderr),
		kong.Bind(&app.Globals),
	)
	assert.NoError(t, err)

	ctx, err := parser.Parse(args)
	assert.NoError(t, err)

	runErr := ctx.Run()
	return stdout.String(), stderr.String(), runErr
}

func TestCheckCmd(t *testing.T) {
	path := writeTempFile(t, balancedFile)

	stdout, _, err := runCommand(t, "--encoding", "utf8", "check", path)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(stdout, "Check passed"))
	assert.True(t, strings.Contains(stdout, "2 account(s)"))
}

func TestCheckCmdUnbalanced(t *testing.T) {
	path := writeTempFile(t, unbalancedFile)

	_, stderr, err := runCommand(t, "--encoding", "utf8", "check", path)
	assert.Error(t, err)

	var cmdErr *CommandError
	assert.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 1, cmdErr.ExitCode())
	assert.True(t, strings.Contains(stderr, "A1"))
	assert.True(t, strings.Contains(stderr, "1 unbalanced voucher(s) found"))
}

func TestCheckCmdParseError(t *testing.T) {
	path := writeTempFile(t, "#KONTO 1930\n")

	_, stderr, err := runCommand(t, "--encoding", "utf8", "check", path)
	assert.Error(t, err)

	var cmdErr *CommandError
	assert.True(t, errors.As(err, &cmdErr))
	assert.True(t, strings.Contains(stderr, "parse error"))
}

func TestCheckCmdStrict(t *testing.T) {
	path := writeTempFile(t, unbalancedFile)

	_, stderr, err := runCommand(t, "--encoding", "utf8", "--strict", "check", path)
	assert.Error(t, err)
	assert.True(t, strings.Contains(stderr, "validation error"))
}

func TestAccountsCmdCSV(t *testing.T) {
	path := writeTempFile(t, balancedFile)

	stdout, _, err := runCommand(t, "--encoding", "utf8", "accounts", "--csv", path)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(stdout, "number,name,type,balance,normal_balance,sru_code"))
	assert.True(t, strings.Contains(stdout, "1930,Bank,ASSET,1250.00,debit,"))
}

func TestAccountsCmdOutputFile(t *testing.T) {
	path := writeTempFile(t, balancedFile)
	out := filepath.Join(t.TempDir(), "accounts.csv")

	stdout, _, err := runCommand(t, "--encoding", "utf8", "accounts", "--csv", "--output", out, path)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(stdout, "Report written to"))

	written, err := os.ReadFile(out)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(string(written), "1930,Bank"))
}

func TestVouchersCmd(t *testing.T) {
	path := writeTempFile(t, balancedFile)

	stdout, _, err := runCommand(t, "--encoding", "utf8", "vouchers", path)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(stdout, "A1"))
	assert.True(t, strings.Contains(stdout, "balanced"))
	assert.True(t, strings.Contains(stdout, "Total vouchers: 1"))
}

func TestSummaryCmd(t *testing.T) {
	path := writeTempFile(t, balancedFile)

	stdout, _, err := runCommand(t, "--encoding", "utf8", "summary", path)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(stdout, "Exempelbolaget AB"))
	assert.True(t, strings.Contains(stdout, "Vouchers"))
}

func TestDoctorLexCmd(t *testing.T) {
	path := writeTempFile(t, balancedFile)

	stdout, _, err := runCommand(t, "--encoding", "utf8", "doctor", "lex", path)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(stdout, "#KONTO"))
	assert.True(t, strings.Contains(stdout, `"1930"`))
	assert.True(t, strings.Contains(stdout, "{"))
}

func TestDoctorDumpCmd(t *testing.T) {
	path := writeTempFile(t, balancedFile)

	stdout, _, err := runCommand(t, "--encoding", "utf8", "doctor", "dump", path)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(stdout, "Exempelbolaget AB"))
	assert.True(t, strings.Contains(stdout, "Vouchers"))
}

func TestFileOrStdinDecodeMissingFile(t *testing.T) {
	var app struct {
		Commands
	}
	parser, err := kong.New(&app, kong.Name("sie"), kong.Bind(&app.Globals))
	assert.NoError(t, err)

	_, err = parser.Parse([]string{"check", filepath.Join(t.TempDir(), "missing.se")})
	assert.Error(t, err)
}
