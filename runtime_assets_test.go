package pagekit

import (
	"io/fs"
	"strings"
	"testing"
)

func TestRuntimeAssetsFS_ContainsScript(t *testing.T) {
	data, err := fs.ReadFile(RuntimeAssetsFS(), RuntimeScriptName)
	if err != nil {
		t.Fatalf("read runtime script: %v", err)
	}
	script := string(data)

	for _, want := range []string{
		"DOMContentLoaded",
		", 5000)",
		"classList.add('was-validated')",
		"function confirmDelete(message)",
		"Are you sure you want to delete this item?",
	} {
		if !strings.Contains(script, want) {
			t.Fatalf("runtime script missing %q", want)
		}
	}
}

func TestRuntimeScript_MatchesFS(t *testing.T) {
	direct := RuntimeScript()
	viaFS, err := fs.ReadFile(RuntimeAssetsFS(), RuntimeScriptName)
	if err != nil {
		t.Fatalf("read via fs: %v", err)
	}
	if string(direct) != string(viaFS) {
		t.Fatal("RuntimeScript and RuntimeAssetsFS disagree")
	}
}

func TestScriptTag_EscapesSrc(t *testing.T) {
	tag := ScriptTag(`/assets/pagekit.js?v="1"`)
	if strings.Contains(tag, `"1"`) {
		t.Fatalf("src not escaped: %s", tag)
	}
	if !strings.HasPrefix(tag, `<script src="`) || !strings.HasSuffix(tag, `" defer></script>`) {
		t.Fatalf("unexpected tag shape: %s", tag)
	}
}
