package subtitles

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// helper : enveloppe des paragraphes dans un document TTML minimal (namespace par défaut)
func ttmlDoc(paragraphs string) []byte {
	return []byte(`<?xml version="1.0" encoding="utf-8"?>
<tt xmlns="http://www.w3.org/ns/ttml" xmlns:ttm="http://www.w3.org/ns/ttml#metadata" xml:lang="en">
	<head><metadata><ttm:title>Episode</ttm:title></metadata></head>
	<body>
		<div>
` + paragraphs + `
		</div>
	</body>
</tt>`)
}

func TestBuildTranscript_ParagraphsInOrder(t *testing.T) {
	doc := ttmlDoc(`
			<p begin="0.5"><span>Hello</span> <span>world.</span></p>
			<p begin="1:05"><span>Second line</span></p>
			<p begin="1:40:14.700"><span>Third</span><br/><span>line</span></p>`)

	tr, err := BuildTranscript(doc, Options{})
	if err != nil {
		t.Fatalf("BuildTranscript: %v", err)
	}
	want := "Hello world.\n\nSecond line\n\nThird line"
	if got := tr.String(); got != want {
		t.Fatalf("String() = %q; want %q", got, want)
	}
	if tr.Len() != 3 {
		t.Fatalf("Len() = %d; want 3", tr.Len())
	}
}

func TestBuildTranscript_WithTimestamps(t *testing.T) {
	doc := ttmlDoc(`
			<p begin="90"><span>ninety</span></p>
			<p><span>no begin</span></p>
			<p begin="1:40:14.700"><span>late</span></p>
			<p begin="bogus"><span>bad begin</span></p>`)

	tr, err := BuildTranscript(doc, Options{IncludeTimestamps: true})
	if err != nil {
		t.Fatalf("BuildTranscript: %v", err)
	}
	want := []string{
		"[00:01:30] ninety",
		"no begin",
		"[01:40:14] late",
		"[00:00:00] bad begin",
	}
	got := tr.Lines()
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d: %#v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestBuildTranscript_SkipsEmptyParagraphs(t *testing.T) {
	doc := ttmlDoc(`
			<p begin="1"><span>kept 1</span></p>
			<p begin="2">text outside any span</p>
			<p begin="3"><span>   </span><span></span></p>
			<p begin="4"><div><span>nested, not a direct child</span></div></p>
			<p begin="5"><span>kept 2</span></p>`)

	tr, err := BuildTranscript(doc, Options{IncludeTimestamps: true})
	if err != nil {
		t.Fatalf("BuildTranscript: %v", err)
	}
	want := "[00:00:01] kept 1\n\n[00:00:05] kept 2"
	if got := tr.String(); got != want {
		t.Fatalf("String() = %q; want %q", got, want)
	}
}

func TestBuildTranscript_NestedSpans(t *testing.T) {
	doc := ttmlDoc(`
			<p><span>Hi <span>there</span> my <span>friend</span>!</span></p>`)

	tr, err := BuildTranscript(doc, Options{})
	if err != nil {
		t.Fatalf("BuildTranscript: %v", err)
	}
	// chaque fragment est joint par un espace, y compris autour des tails
	want := "Hi  there  my  friend !"
	if got := tr.String(); got != want {
		t.Fatalf("String() = %q; want %q", got, want)
	}
}

func TestBuildTranscript_PrefixedNamespace(t *testing.T) {
	prefixed := []byte(`<?xml version="1.0"?>
<tt:tt xmlns:tt="http://www.w3.org/ns/ttml">
  <tt:body>
    <tt:div>
      <tt:p begin="90"><tt:span>Prefixed</tt:span></tt:p>
    </tt:div>
  </tt:body>
</tt:tt>`)
	plain := []byte(`<tt><body><div><p begin="90"><span>Prefixed</span></p></div></body></tt>`)

	a, err := BuildTranscript(prefixed, Options{IncludeTimestamps: true})
	if err != nil {
		t.Fatalf("prefixed: %v", err)
	}
	b, err := BuildTranscript(plain, Options{IncludeTimestamps: true})
	if err != nil {
		t.Fatalf("plain: %v", err)
	}
	if a.String() != b.String() || a.String() != "[00:01:30] Prefixed" {
		t.Fatalf("prefixed = %q, plain = %q", a.String(), b.String())
	}
}

func TestBuildTranscript_FirstDivOnly(t *testing.T) {
	doc := []byte(`<tt><body>
		<div><p><span>first div</span></p></div>
		<div><p><span>second div</span></p></div>
	</body></tt>`)

	tr, err := BuildTranscript(doc, Options{})
	if err != nil {
		t.Fatalf("BuildTranscript: %v", err)
	}
	if got := tr.String(); got != "first div" {
		t.Fatalf("String() = %q; want %q", got, "first div")
	}
}

func TestBuildTranscript_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
		wantMsg string
	}{
		{"malformed", `<tt><body><div><p><span>oops</p></div></body></tt>`, ErrMalformedXML, ""},
		{"not xml", `just some text`, ErrMalformedXML, ""},
		{"empty", ``, ErrMalformedXML, ""},
		{"unknown entity", `<tt><body><div><p><span>a&nbsp;b</span></p></div></body></tt>`, ErrMalformedXML, ""},
		{"no body", `<tt><head/></tt>`, ErrMissingElement, "body"},
		{"no div", `<tt><body><p><span>x</span></p></body></tt>`, ErrMissingElement, "div"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildTranscript([]byte(tc.doc), Options{})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v; want %v", err, tc.wantErr)
			}
			if tc.wantMsg != "" && !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("err = %q; should name %q", err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestBuildTranscript_Encodings(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"utf-8 bom", "\ufeff<?xml version=\"1.0\" encoding=\"utf-8\"?><tt><body><div><p><span>x</span></p></div></body></tt>", "x"},
		{"bom without declaration", "\ufeff<tt><body><div><p><span>y</span></p></div></body></tt>", "y"},
		{"latin-1", "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><tt><body><div><p><span>caf\xe9</span></p></div></body></tt>", "café"},
		{"windows-1252", "<?xml version=\"1.0\" encoding=\"windows-1252\"?><tt><body><div><p><span>\x93ok\x94</span></p></div></body></tt>", "\u201cok\u201d"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := BuildTranscript([]byte(tc.doc), Options{})
			if err != nil {
				t.Fatalf("BuildTranscript: %v", err)
			}
			if got := tr.String(); got != tc.want {
				t.Fatalf("String() = %q; want %q", got, tc.want)
			}
		})
	}
}

func TestBuildTranscript_NoParagraphs(t *testing.T) {
	tr, err := BuildTranscript([]byte(`<tt><body><div/></body></tt>`), Options{IncludeTimestamps: true})
	if err != nil {
		t.Fatalf("BuildTranscript: %v", err)
	}
	if tr.String() != "" || tr.Len() != 0 {
		t.Fatalf("expected empty transcript, got %q", tr.String())
	}
}

func TestTranscriptSave(t *testing.T) {
	dir := t.TempDir()

	tr := NewTranscript([]Phrase{
		{Text: "un"},
		{Text: "deux", HasBegin: true, Begin: 61},
	}, true)
	path := filepath.Join(dir, "sub", "out.txt")
	if err := tr.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "un\n\n[00:01:01] deux" {
		t.Fatalf("file content = %q", got)
	}

	// un transcript vide est tout de même écrit
	emptyPath := filepath.Join(dir, "empty.txt")
	if err := NewTranscript(nil, false).Save(emptyPath); err != nil {
		t.Fatalf("Save empty: %v", err)
	}
	info, err := os.Stat(emptyPath)
	if err != nil {
		t.Fatalf("empty transcript not written: %v", err)
	}
	if info.Size() != 0 {
		t.Fatalf("empty transcript size = %d; want 0", info.Size())
	}
}
