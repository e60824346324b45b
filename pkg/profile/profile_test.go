package profile

import "testing"

func TestDefaultKeybindings(t *testing.T) {
	kb := DefaultKeybindings()
	if kb.Quit == "" || kb.Select == "" {
		t.Error("DefaultKeybindings() left required keys empty")
	}
}

func TestMergeKeybindingsOverridesOnlySetFields(t *testing.T) {
	base := DefaultKeybindings()
	override := Keybindings{Quit: "q"}

	merged := mergeKeybindings(base, override)
	if merged.Quit != "q" {
		t.Errorf("Quit = %q, want override %q", merged.Quit, "q")
	}
	if merged.Select != base.Select {
		t.Errorf("Select = %q, want unchanged default %q", merged.Select, base.Select)
	}
}

func TestBuiltinProfiles(t *testing.T) {
	for _, name := range []string{"interactive", "moderate", "sensitive"} {
		spec, ok := builtinSpecs[name]
		if !ok {
			t.Fatalf("builtinSpecs missing %q", name)
		}
		params, err := spec.Params(make([]byte, 16))
		if err != nil {
			t.Fatalf("Spec(%q).Params() error = %v", name, err)
		}
		if params.TagLen() != 32 {
			t.Errorf("Spec(%q).Params().TagLen() = %d, want 32", name, params.TagLen())
		}
	}
}

func TestSpecParamsRejectsUnknownVariant(t *testing.T) {
	spec := Spec{Variant: "argon2x", MemoryKB: 8, Time: 1, Parallelism: 1, TagLen: 32}
	if _, err := spec.Params(make([]byte, 16)); err == nil {
		t.Error("Params() with an unknown variant should fail")
	}
}

func TestLoadWithoutConfigFileReturnsBuiltins(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Profiles) != len(builtinSpecs) {
		t.Errorf("Load() profile count = %d, want %d", len(cfg.Profiles), len(builtinSpecs))
	}
	if cfg.Keybindings != DefaultKeybindings() {
		t.Error("Load() without a config file should return default keybindings")
	}
}

func TestParseSpecTable(t *testing.T) {
	table := map[string]string{
		"variant":     "argon2i",
		"memory_kb":   "4096",
		"time":        "2",
		"parallelism": "1",
		"tag_len":     "16",
	}
	spec, ok := parseSpecTable(table)
	if !ok {
		t.Fatal("parseSpecTable() found nothing in a populated table")
	}
	if spec.Variant != "argon2i" || spec.MemoryKB != 4096 || spec.Time != 2 || spec.Parallelism != 1 || spec.TagLen != 16 {
		t.Errorf("parseSpecTable() = %+v, unexpected field values", spec)
	}
}
