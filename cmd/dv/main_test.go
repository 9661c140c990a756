package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matsen/devvault/internal/config"
	"github.com/matsen/devvault/internal/snippet"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// fakeCopier records what get sends to the clipboard.
type fakeCopier struct {
	text string
	err  error
}

func (f *fakeCopier) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

// testEnv isolates HOME and the config directory and resets command state.
// It returns the home directory.
func testEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("DV_OUTPUT", "")
	t.Setenv("DV_CLIPBOARD", "")
	t.Setenv("DV_LOG_LEVEL", "")
	t.Setenv("NO_COLOR", "1")
	return home
}

func resetFlags() {
	humanOutput, jsonOutput, logLevel, noBanner = false, false, "", false
	addKey, addDescription, addCommand, addTags = "", "", "", nil
	listMatch = ""
	getNoCopy = false
	exportFormat, exportOutput = "", ""
	importFormat, importDryRun = "", false

	globalCfg = nil
	storePath = ""
	copier = nil
	config.ResetGlobalConfigCache()

	unset := func(f *pflag.Flag) { f.Changed = false }
	rootCmd.PersistentFlags().VisitAll(unset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(unset)
	}
}

// runDV executes the root command in-process and returns its stdout.
func runDV(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--no-banner"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runDV(t, args...)
	if err != nil {
		t.Fatalf("dv %v: %v\noutput:\n%s", args, err, out)
	}
	return out
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if err != nil {
		return ExitError
	}
	return ExitSuccess
}

func storeFile(home string) string {
	return filepath.Join(home, ".devvault", "snippets.json")
}

func readStore(t *testing.T, home string) snippet.Collection {
	t.Helper()
	data, err := os.ReadFile(storeFile(home))
	if err != nil {
		t.Fatalf("reading store: %v", err)
	}
	var c snippet.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		t.Fatalf("parsing store: %v", err)
	}
	return c
}

func keysOf(c snippet.Collection) []string {
	keys := make([]string, len(c))
	for i, s := range c {
		keys[i] = s.Key
	}
	return keys
}

func addSample(t *testing.T, key, desc, command, tags string) {
	t.Helper()
	args := []string{"add", "-k", key, "-d", desc, "-c", command}
	if tags != "" {
		args = append(args, "-t", tags)
	}
	mustRun(t, args...)
}

func TestListEmptyStore(t *testing.T) {
	home := testEnv(t)

	out := mustRun(t, "list")
	if !strings.Contains(out, "No snippets found.") {
		t.Errorf("list output = %q, want empty message", out)
	}
	if _, err := os.Stat(storeFile(home)); !os.IsNotExist(err) {
		t.Errorf("list created the store file (stat err = %v)", err)
	}

	out = mustRun(t, "--json", "list")
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("list --json = %q, want []", out)
	}
}

func TestAddCreatesStore(t *testing.T) {
	home := testEnv(t)

	out := mustRun(t, "add", "-k", "gitlog", "-d", "pretty log", "-c", "git log --oneline", "-t", "git,log", "-t", "history")
	if !strings.Contains(out, "Added snippet: gitlog") {
		t.Errorf("add output = %q", out)
	}

	c := readStore(t, home)
	if len(c) != 1 {
		t.Fatalf("store has %d snippets, want 1", len(c))
	}
	want := snippet.Snippet{Key: "gitlog", Description: "pretty log", Command: "git log --oneline", Tags: []string{"git", "log", "history"}}
	got := c[0]
	if got.Key != want.Key || got.Description != want.Description || got.Command != want.Command {
		t.Errorf("stored snippet = %+v, want %+v", got, want)
	}
	if strings.Join(got.Tags, "|") != strings.Join(want.Tags, "|") {
		t.Errorf("tags = %v, want %v", got.Tags, want.Tags)
	}
}

func TestAddWithoutTagsStoresEmptyArray(t *testing.T) {
	home := testEnv(t)
	addSample(t, "a", "A", "echo a", "")

	data, err := os.ReadFile(storeFile(home))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"tags": []`) {
		t.Errorf("store = %s, want empty tags array", data)
	}
}

func TestAddDuplicateKeepsOriginal(t *testing.T) {
	home := testEnv(t)
	addSample(t, "gitlog", "first", "git log", "")

	out, err := runDV(t, "add", "-k", "gitlog", "-d", "second", "-c", "git log -p")
	if err != nil {
		t.Fatalf("duplicate add returned error: %v", err)
	}
	if !strings.Contains(out, "A snippet with key 'gitlog' already exists.") {
		t.Errorf("duplicate output = %q", out)
	}

	c := readStore(t, home)
	if len(c) != 1 || c[0].Description != "first" {
		t.Errorf("store after duplicate = %+v", c)
	}

	out = mustRun(t, "--json", "add", "-k", "gitlog", "-d", "third", "-c", "x")
	var resp StatusResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("parsing %q: %v", out, err)
	}
	if resp.Status != StatusDuplicate || resp.Key != "gitlog" {
		t.Errorf("json response = %+v", resp)
	}
}

func TestAddEmptyKeyRejected(t *testing.T) {
	home := testEnv(t)

	_, err := runDV(t, "add", "-k", "", "-d", "desc", "-c", "cmd")
	if exitCode(err) != ExitError {
		t.Fatalf("exit code = %d, want %d (err %v)", exitCode(err), ExitError, err)
	}
	if _, err := os.Stat(storeFile(home)); !os.IsNotExist(err) {
		t.Errorf("store file written for rejected snippet")
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	testEnv(t)
	addSample(t, "zeta", "Z", "echo z", "")
	addSample(t, "alpha", "A", "echo a", "")
	addSample(t, "mid", "M", "echo m", "")

	out := mustRun(t, "--json", "list")
	var c snippet.Collection
	if err := json.Unmarshal([]byte(out), &c); err != nil {
		t.Fatalf("parsing %q: %v", out, err)
	}
	if got := strings.Join(keysOf(c), ","); got != "zeta,alpha,mid" {
		t.Errorf("list order = %s, want zeta,alpha,mid", got)
	}

	out = mustRun(t, "list")
	if strings.Index(out, "zeta") > strings.Index(out, "alpha") {
		t.Errorf("human list not in insertion order:\n%s", out)
	}
}

func TestListMatch(t *testing.T) {
	testEnv(t)
	addSample(t, "git-log", "log", "git log", "")
	addSample(t, "git-st", "status", "git status", "")
	addSample(t, "docker-ps", "ps", "docker ps", "")

	out := mustRun(t, "--json", "list", "--match", "git-*")
	var c snippet.Collection
	if err := json.Unmarshal([]byte(out), &c); err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(keysOf(c), ","); got != "git-log,git-st" {
		t.Errorf("list --match = %s", got)
	}

	_, err := runDV(t, "list", "--match", "[")
	if exitCode(err) != ExitError {
		t.Errorf("bad pattern exit code = %d, want %d", exitCode(err), ExitError)
	}
}

func TestGetCopiesCommand(t *testing.T) {
	testEnv(t)
	addSample(t, "ports", "listening ports", "lsof -iTCP -sTCP:LISTEN", "net")

	fake := &fakeCopier{}
	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--no-banner", "get", "ports"})
	copier = fake
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("get: %v", err)
	}

	if fake.text != "lsof -iTCP -sTCP:LISTEN" {
		t.Errorf("copied %q", fake.text)
	}
	if !strings.Contains(out.String(), "Found: 'listening ports'") {
		t.Errorf("get output = %q", out.String())
	}
}

func TestGetClipboardFailure(t *testing.T) {
	testEnv(t)
	addSample(t, "a", "A", "echo a", "")

	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--no-banner", "get", "a"})
	copier = &fakeCopier{err: errors.New("no clipboard")}
	err := rootCmd.Execute()
	if exitCode(err) != ExitError {
		t.Fatalf("exit code = %d, want %d", exitCode(err), ExitError)
	}
	if !strings.Contains(err.Error(), "--no-copy") {
		t.Errorf("error %q does not suggest --no-copy", err)
	}
}

func TestGetNoCopy(t *testing.T) {
	testEnv(t)
	addSample(t, "hello", "greeting", "echo hello", "")

	out := mustRun(t, "get", "hello", "--no-copy")
	if out != "echo hello\n" {
		t.Errorf("get --no-copy = %q, want command only", out)
	}

	out = mustRun(t, "--json", "get", "hello", "--no-copy")
	var resp SnippetResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != StatusFound || resp.Snippet == nil || resp.Snippet.Command != "echo hello" || resp.Copied {
		t.Errorf("json response = %+v", resp)
	}
}

func TestGetIsCaseSensitive(t *testing.T) {
	testEnv(t)
	addSample(t, "GitLog", "log", "git log", "")

	out := mustRun(t, "get", "gitlog", "--no-copy")
	if !strings.Contains(out, "No snippet found with key: 'gitlog'") {
		t.Errorf("get output = %q", out)
	}
}

func TestSearch(t *testing.T) {
	testEnv(t)
	addSample(t, "d1", "Docker cleanup", "docker system prune", "")
	addSample(t, "d2", "remove volumes", "docker volume prune", "docker")
	addSample(t, "other", "unrelated", "docker ps", "")

	out := mustRun(t, "--json", "search", "DOCKER")
	var c snippet.Collection
	if err := json.Unmarshal([]byte(out), &c); err != nil {
		t.Fatal(err)
	}
	// "other" only mentions docker in its command, which is not searched.
	if got := strings.Join(keysOf(c), ","); got != "d1,d2" {
		t.Errorf("search DOCKER = %s, want d1,d2", got)
	}

	out = mustRun(t, "search", "Cleanup")
	if !strings.Contains(out, "Found 1 matches") {
		t.Errorf("human search output = %q", out)
	}

	out = mustRun(t, "search", "nomatch")
	if !strings.Contains(out, "No matches found for 'nomatch'") {
		t.Errorf("no-match output = %q", out)
	}
	out = mustRun(t, "--json", "search", "nomatch")
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("json no-match = %q", out)
	}
}

func TestDelete(t *testing.T) {
	home := testEnv(t)
	addSample(t, "a", "A", "echo a", "")
	addSample(t, "b", "B", "echo b", "")
	addSample(t, "c", "C", "echo c", "")

	out := mustRun(t, "delete", "b")
	if !strings.Contains(out, "Deleted snippet: b") {
		t.Errorf("delete output = %q", out)
	}
	if got := strings.Join(keysOf(readStore(t, home)), ","); got != "a,c" {
		t.Errorf("store after delete = %s, want a,c", got)
	}

	before, err := os.Stat(storeFile(home))
	if err != nil {
		t.Fatal(err)
	}
	out = mustRun(t, "rm", "missing")
	if !strings.Contains(out, "Snippet not found: missing") {
		t.Errorf("delete missing output = %q", out)
	}
	after, err := os.Stat(storeFile(home))
	if err != nil {
		t.Fatal(err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Errorf("store rewritten when nothing was deleted")
	}
}

func TestDeleteRemovesAllDuplicates(t *testing.T) {
	home := testEnv(t)
	writeRawStore(t, home, `[
  {"key": "x", "description": "1", "command": "a", "tags": []},
  {"key": "y", "description": "2", "command": "b", "tags": []},
  {"key": "x", "description": "3", "command": "c", "tags": []}
]`)

	mustRun(t, "delete", "x")
	if got := strings.Join(keysOf(readStore(t, home)), ","); got != "y" {
		t.Errorf("store after delete = %s, want y", got)
	}
}

func writeRawStore(t *testing.T, home, content string) {
	t.Helper()
	path := storeFile(home)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestCorruptStoreIsFatal(t *testing.T) {
	home := testEnv(t)
	writeRawStore(t, home, "{not json")

	for _, args := range [][]string{
		{"list"},
		{"search", "x"},
		{"get", "x", "--no-copy"},
		{"delete", "x"},
		{"add", "-k", "x", "-d", "y", "-c", "z"},
	} {
		t.Run(args[0], func(t *testing.T) {
			_, err := runDV(t, args...)
			if exitCode(err) != ExitDataError {
				t.Errorf("exit code = %d, want %d (err %v)", exitCode(err), ExitDataError, err)
			}
		})
	}

	data, err := os.ReadFile(storeFile(home))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{not json" {
		t.Errorf("corrupt store was overwritten: %q", data)
	}
}

func TestBlankStoreIsEmpty(t *testing.T) {
	home := testEnv(t)
	writeRawStore(t, home, "  \n")

	out := mustRun(t, "--json", "list")
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("list on blank store = %q", out)
	}
}

func TestHumanAndJSONExclusive(t *testing.T) {
	testEnv(t)
	_, err := runDV(t, "--human", "--json", "list")
	if err == nil {
		t.Fatal("expected error for --human with --json")
	}
}

func TestConfigOutputDefault(t *testing.T) {
	home := testEnv(t)
	mustRun(t, "config", "output", "json")

	data, err := os.ReadFile(filepath.Join(home, ".config", "dv", "config.yml"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "output: json") {
		t.Errorf("config file = %q", data)
	}

	out := mustRun(t, "list")
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("list with output=json = %q", out)
	}

	// --human still wins over the config default.
	out = mustRun(t, "--human", "list")
	if !strings.Contains(out, "No snippets found.") {
		t.Errorf("list --human = %q", out)
	}

	out = mustRun(t, "config", "output")
	if !strings.Contains(out, `"output": "json"`) {
		t.Errorf("config get = %q", out)
	}
}

func TestConfigInvalid(t *testing.T) {
	testEnv(t)

	tests := []struct {
		args []string
		code int
	}{
		{[]string{"config", "nope"}, ExitError},
		{[]string{"config", "nope", "x"}, ExitError},
		{[]string{"config", "output", "xml"}, ExitConfigError},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			_, err := runDV(t, tt.args...)
			if exitCode(err) != tt.code {
				t.Errorf("exit code = %d, want %d (err %v)", exitCode(err), tt.code, err)
			}
		})
	}
}

func TestBrokenConfigIsConfigError(t *testing.T) {
	home := testEnv(t)
	dir := filepath.Join(home, ".config", "dv")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("output: xml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := runDV(t, "list")
	if exitCode(err) != ExitConfigError {
		t.Errorf("exit code = %d, want %d", exitCode(err), ExitConfigError)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	home := testEnv(t)
	addSample(t, "a", "A", "echo a", "x,y")
	addSample(t, "b", "B", "echo b", "")

	for _, ext := range []string{"json", "yaml"} {
		t.Run(ext, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "backup."+ext)
			mustRun(t, "export", "-o", file)

			// Import into an empty store.
			if err := os.Remove(storeFile(home)); err != nil {
				t.Fatal(err)
			}
			out := mustRun(t, "--json", "import", file)
			var res ImportResult
			if err := json.Unmarshal([]byte(out), &res); err != nil {
				t.Fatalf("parsing %q: %v", out, err)
			}
			if res.New != 2 || res.Skipped != 0 {
				t.Errorf("import result = %+v", res)
			}
			c := readStore(t, home)
			if got := strings.Join(keysOf(c), ","); got != "a,b" {
				t.Errorf("keys after import = %s", got)
			}
			if strings.Join(c[0].Tags, ",") != "x,y" {
				t.Errorf("tags after import = %v", c[0].Tags)
			}
		})
	}
}

func TestExportStdoutMatchesStore(t *testing.T) {
	home := testEnv(t)
	addSample(t, "a", "A", "echo a", "t")

	out := mustRun(t, "export")
	data, err := os.ReadFile(storeFile(home))
	if err != nil {
		t.Fatal(err)
	}
	if out != string(data) {
		t.Errorf("export = %q, store = %q", out, data)
	}
}

func TestImportSkipsDuplicates(t *testing.T) {
	home := testEnv(t)
	addSample(t, "a", "original", "echo a", "")

	file := filepath.Join(t.TempDir(), "in.json")
	content := `[
  {"key": "a", "description": "replacement", "command": "x"},
  {"key": "b", "description": "B", "command": "echo b"},
  {"key": "b", "description": "again", "command": "y"},
  {"key": "", "description": "no key", "command": "z"}
]`
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out := mustRun(t, "--json", "import", "--dry-run", file)
	var res ImportResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatal(err)
	}
	if res.New != 1 || res.Skipped != 3 || len(res.Errors) != 1 || !res.DryRun {
		t.Errorf("dry-run result = %+v", res)
	}
	if got := strings.Join(keysOf(readStore(t, home)), ","); got != "a" {
		t.Errorf("dry run changed store: %s", got)
	}

	mustRun(t, "import", file)
	c := readStore(t, home)
	if got := strings.Join(keysOf(c), ","); got != "a,b" {
		t.Errorf("keys after import = %s", got)
	}
	if c[0].Description != "original" || c[1].Description != "B" {
		t.Errorf("import overwrote existing snippets: %+v", c)
	}
}

func TestImportUnparseable(t *testing.T) {
	testEnv(t)
	file := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(file, []byte("key: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := runDV(t, "import", file)
	if exitCode(err) != ExitDataError {
		t.Errorf("exit code = %d, want %d", exitCode(err), ExitDataError)
	}
}

func TestTags(t *testing.T) {
	testEnv(t)
	addSample(t, "a", "A", "echo a", "git,log")
	addSample(t, "b", "B", "echo b", "Git")
	addSample(t, "c", "C", "echo c", "docker")

	out := mustRun(t, "--json", "tags")
	var counts []struct {
		Tag   string `json:"tag"`
		Count int    `json:"count"`
	}
	if err := json.Unmarshal([]byte(out), &counts); err != nil {
		t.Fatalf("parsing %q: %v", out, err)
	}
	if len(counts) != 3 || counts[0].Tag != "git" || counts[0].Count != 2 {
		t.Errorf("tags = %+v", counts)
	}
}

func TestCheck(t *testing.T) {
	home := testEnv(t)
	writeRawStore(t, home, `[
  {"key": "x", "description": "1", "command": "a", "tags": []},
  {"key": "", "description": "2", "command": "b", "tags": []},
  {"key": "x", "description": "3", "command": "c", "tags": []}
]`)

	out := mustRun(t, "--json", "check")
	var res CheckResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatal(err)
	}
	if res.Status != "issues" || res.Snippets != 3 || len(res.Issues) != 2 {
		t.Fatalf("check = %+v", res)
	}
	if res.Issues[0].Type != "duplicate_key" || res.Issues[0].Count != 2 {
		t.Errorf("first issue = %+v", res.Issues[0])
	}
	if res.Issues[1].Type != "empty_key" || res.Issues[1].Position != 2 {
		t.Errorf("second issue = %+v", res.Issues[1])
	}
}

func TestCheckClean(t *testing.T) {
	testEnv(t)
	addSample(t, "a", "A", "echo a", "")

	out := mustRun(t, "check")
	if !strings.Contains(out, "Store check: OK") {
		t.Errorf("check output = %q", out)
	}
}

func TestPath(t *testing.T) {
	home := testEnv(t)
	out := mustRun(t, "path")
	if strings.TrimSpace(out) != storeFile(home) {
		t.Errorf("path = %q, want %q", out, storeFile(home))
	}
}

func TestCompletion(t *testing.T) {
	testEnv(t)
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out := mustRun(t, "completion", shell)
			if !strings.Contains(out, "dv") {
				t.Errorf("%s completion does not mention dv", shell)
			}
		})
	}
}

func TestCompleteKeys(t *testing.T) {
	testEnv(t)
	addSample(t, "alpha", "first", "echo a", "")

	keys, directive := completeKeys(&cobra.Command{}, nil, "")
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("directive = %v", directive)
	}
	if len(keys) != 1 || keys[0] != "alpha\tfirst" {
		t.Errorf("keys = %v", keys)
	}
}

func TestAddTagsKeptVerbatim(t *testing.T) {
	home := testEnv(t)

	mustRun(t, "add", "-k", "q", "-d", "d", "-c", "c", "-t", `say"hi`, "-t", "a, b")
	c := readStore(t, home)
	if len(c) != 1 {
		t.Fatalf("store has %d snippets, want 1", len(c))
	}
	want := []string{`say"hi`, "a", " b"}
	if strings.Join(c[0].Tags, "|") != strings.Join(want, "|") {
		t.Errorf("tags = %q, want %q", c[0].Tags, want)
	}
}

func TestAddInvalidUTF8Rejected(t *testing.T) {
	home := testEnv(t)
	addSample(t, "ok", "fine", "echo ok", "")
	before, err := os.ReadFile(storeFile(home))
	if err != nil {
		t.Fatal(err)
	}

	_, err = runDV(t, "add", "-k", "bad", "-d", "d", "-c", "a\xffb")
	if exitCode(err) != ExitError {
		t.Fatalf("exit code = %d, want %d (err %v)", exitCode(err), ExitError, err)
	}
	after, err := os.ReadFile(storeFile(home))
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != string(before) {
		t.Errorf("store changed after rejected add:\n%s", after)
	}
}

func TestNullRecordIsCorrupt(t *testing.T) {
	home := testEnv(t)
	writeRawStore(t, home, `[null]`)

	_, err := runDV(t, "list")
	if exitCode(err) != ExitDataError {
		t.Errorf("exit code = %d, want %d (err %v)", exitCode(err), ExitDataError, err)
	}
}
