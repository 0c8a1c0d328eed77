package prefabs

import (
	"testing"
	"testing/fstest"
)

func characterFS(name string, actions ...string) fstest.MapFS {
	fsys := fstest.MapFS{
		name + "/character.json": {Data: []byte(`{"thumbnail": "t.png"}`)},
	}
	for _, a := range actions {
		fsys[name+"/sprites/"+a+"/0.png"] = &fstest.MapFile{Data: []byte{0}}
	}
	return fsys
}

func merge(parts ...fstest.MapFS) fstest.MapFS {
	out := fstest.MapFS{}
	for _, p := range parts {
		for k, v := range p {
			out[k] = v
		}
	}
	return out
}

func TestDiscover(t *testing.T) {
	fsys := merge(
		characterFS("zed", RequiredActions...),
		characterFS("amy", RequiredActions...),
		characterFS("half", "idle", "fall"),
		fstest.MapFS{
			"nodef/sprites/idle/0.png": {Data: []byte{0}},
			"notes.txt":                {Data: []byte("not a character")},
		},
	)

	accepted, rejected, err := Discover(fsys, RequiredActions)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(accepted) != 2 || accepted[0] != "amy" || accepted[1] != "zed" {
		t.Fatalf("unexpected accepted %v", accepted)
	}

	reasons := map[string]string{}
	for _, r := range rejected {
		reasons[r.Dir] = r.Reason
	}
	if len(reasons) != 2 {
		t.Fatalf("unexpected rejected %v", rejected)
	}
	if reasons["half"] != "missing sprites/dragged" {
		t.Fatalf("unexpected reason for half: %q", reasons["half"])
	}
	if reasons["nodef"] != "missing character definition" {
		t.Fatalf("unexpected reason for nodef: %q", reasons["nodef"])
	}
}

func TestDiscoverCustomRequirements(t *testing.T) {
	fsys := characterFS("half", "idle", "fall")
	accepted, rejected, err := Discover(fsys, []string{"idle", "fall"})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(accepted) != 1 || len(rejected) != 0 {
		t.Fatalf("expected half to be accepted, got %v %v", accepted, rejected)
	}
}

func TestParseRequired(t *testing.T) {
	got := ParseRequired(" idle, fall,,walk ,")
	want := []string{"idle", "fall", "walk"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if ParseRequired("") != nil {
		t.Fatalf("expected nil for an empty list")
	}
}
