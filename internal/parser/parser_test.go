package parser

import (
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/mcncl/echartsopt/internal/errors"
	"github.com/mcncl/echartsopt/internal/models"
)

func TestParse_SimpleObject(t *testing.T) {
	jsonStr := `{"text": "Sales", "left": "center", "show": false, "subtext": null, "top": 20}`
	doc, err := Parse(strings.NewReader(jsonStr))
	if err != nil {
		t.Fatalf("Parse() error = %v, wantErr nil", err)
	}

	if doc.RootIsArray {
		t.Errorf("Parse() doc.RootIsArray = true, want false for an object")
	}

	expectedRoot := models.JSONObject{
		"text":    "Sales",
		"left":    "center",
		"show":    false,
		"subtext": nil,
		"top":     json.Number("20"),
	}

	actualRoot, ok := doc.Root.(models.JSONObject)
	if !ok {
		t.Fatalf("Parse() root is not a models.JSONObject, got %T", doc.Root)
	}
	if !reflect.DeepEqual(actualRoot, expectedRoot) {
		t.Errorf("Parse() root = %v, want %v", actualRoot, expectedRoot)
	}
}

func TestParse_SimpleArray(t *testing.T) {
	doc, err := Parse(strings.NewReader(`[1, "test", true, null, 3.14]`))
	if err != nil {
		t.Fatalf("Parse() error = %v, wantErr nil", err)
	}

	if !doc.RootIsArray {
		t.Errorf("Parse() doc.RootIsArray = false, want true for an array")
	}

	expectedRoot := models.JSONArray{json.Number("1"), "test", true, nil, json.Number("3.14")}
	if !reflect.DeepEqual(doc.Root, expectedRoot) {
		t.Errorf("Parse() root = %v, want %v", doc.Root, expectedRoot)
	}
}

func TestParse_NestedObject(t *testing.T) {
	jsonStr := `{"itemStyle": {"color": "#c23531", "borderWidth": 2}, "smooth": true, "data": [[5, 10], [2, 2]]}`
	doc, err := Parse(strings.NewReader(jsonStr))
	if err != nil {
		t.Fatalf("Parse() error = %v, wantErr nil", err)
	}

	expectedRoot := models.JSONObject{
		"itemStyle": models.JSONObject{
			"color":       "#c23531",
			"borderWidth": json.Number("2"),
		},
		"smooth": true,
		"data": models.JSONArray{
			models.JSONArray{json.Number("5"), json.Number("10")},
			models.JSONArray{json.Number("2"), json.Number("2")},
		},
	}
	if !reflect.DeepEqual(doc.Root, expectedRoot) {
		t.Errorf("Parse() root = %v, want %v", doc.Root, expectedRoot)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	if err == nil {
		t.Fatalf("Parse() with empty reader, err = nil, want error")
	}
	if !stderrors.Is(err, errors.ErrEmptyInput) {
		t.Errorf("Parse() with empty reader, err = %v, want ErrEmptyInput", err)
	}
}

func TestParseString_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   "} {
		_, err := ParseString(input)
		if err == nil {
			t.Errorf("ParseString(%q) err = nil, want error", input)
			continue
		}
		if !strings.Contains(err.Error(), "input string is empty") {
			t.Errorf("ParseString(%q) err = %v, want error containing 'input string is empty'", input, err)
		}
	}
}

func TestParseBytes_WhitespaceOnly(t *testing.T) {
	_, err := ParseBytes([]byte(" \n\t"))
	if !stderrors.Is(err, errors.ErrEmptyInput) {
		t.Errorf("ParseBytes() err = %v, want ErrEmptyInput", err)
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	inputs := []string{
		`{"name": "John Doe", "age": 30`,
		`["item1", "item2",`,
		`{"name": }`,
	}
	for _, input := range inputs {
		_, err := ParseString(input)
		if err == nil {
			t.Errorf("ParseString(%q) err = nil, want error", input)
			continue
		}
		if !stderrors.Is(err, errors.ErrInvalidJSON) {
			t.Errorf("ParseString(%q) err = %v, want ErrInvalidJSON", input, err)
		}
	}
}

func TestParse_MultipleValues(t *testing.T) {
	_, err := ParseString(`{"a": 1} {"b": 2}`)
	if !stderrors.Is(err, errors.ErrMultipleJSON) {
		t.Errorf("ParseString() err = %v, want ErrMultipleJSON", err)
	}
}

func TestParseFile_SimpleObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "option.json")
	if err := os.WriteFile(path, []byte(`{"series": [{"type": "bar"}], "animation": false}`), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	doc, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v, wantErr nil", err)
	}

	expectedRoot := models.JSONObject{
		"series":    models.JSONArray{models.JSONObject{"type": "bar"}},
		"animation": false,
	}
	if !reflect.DeepEqual(doc.Root, expectedRoot) {
		t.Errorf("ParseFile() root = %v, want %v", doc.Root, expectedRoot)
	}
}

func TestParseFile_NonExistentFile(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nonexistentfile.json"))
	if !stderrors.Is(err, errors.ErrFileNotFound) {
		t.Errorf("ParseFile() with non-existent file, err = %v, want ErrFileNotFound", err)
	}
}

func TestParseFile_EmptyPath(t *testing.T) {
	_, err := ParseFile("")
	if err == nil || !strings.Contains(err.Error(), "file path is empty") {
		t.Errorf("ParseFile() with empty path, err = %v, want error containing 'file path is empty'", err)
	}
}

func TestParseFile_EmptyFileContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	_, err := ParseFile(path)
	if !stderrors.Is(err, errors.ErrFileEmpty) {
		t.Errorf("ParseFile() with empty file content, err = %v, want ErrFileEmpty", err)
	}
}

func TestParse_RootPrimitives(t *testing.T) {
	testCases := []struct {
		name        string
		jsonStr     string
		expectedVal interface{}
	}{
		{"RootString", `"#ff0000"`, "#ff0000"},
		{"RootNumber", `123.45`, json.Number("123.45")},
		{"RootBooleanTrue", `true`, true},
		{"RootBooleanFalse", `false`, false},
		{"RootNull", `null`, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Parse(strings.NewReader(tc.jsonStr))
			if err != nil {
				t.Fatalf("Parse() error = %v, wantErr nil", err)
			}
			if doc.RootIsArray {
				t.Errorf("Parse() doc.RootIsArray = true, want false")
			}
			if !reflect.DeepEqual(doc.Root, tc.expectedVal) {
				t.Errorf("Parse() root = %#v (type %T), want %#v (type %T)", doc.Root, doc.Root, tc.expectedVal, tc.expectedVal)
			}
		})
	}
}
