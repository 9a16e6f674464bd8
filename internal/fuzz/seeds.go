package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxFuzzInput = 1 << 16 // 64 KiB
	maxSeedBytes = 64 << 10
)

var languageSeeds = []string{
	"",
	"using System;\nnamespace N { class C { } }\n",
	"using System;\nvoid M() { }",
	"class C { int P { get; set; } int Q { get { return 1; } set { } } }",
	"namespace N;\nusing A;\nclass C {}\n",
	"class C { void M() { if (x) { y(); } else { z(); } } }",
	"[Serializable]\npublic sealed class C : B, I\n{\n    public event E Ev;\n}\n",
	"class C { C() : base() { } ~C() { } static int operator +(C a, C b) => a; }",
	"#if DEBUG\nclass D { }\n#endif\n",
	"/* block */ class C { // line\n}\n",
	"class C { string s = @\"verbatim \"\"quoted\"\"\"; char c = '\\n'; }",
	"delegate void D(int x);\nenum E { A, B = 2, }\nstruct S { }\ninterface I { void M(); }\n",
	"class C { int P { get; } = 1\n int Q; }",
	"class C {\r\n\r\n\r\n\r\n  void M() { }\r\n}\r\n",
	"\ufeffclass C { }",
	"class C { void M( { }",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.cs файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".cs" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
