package types

import (
	"reflect"
	"testing"
)

func TestContainerName(t *testing.T) {
	tests := []struct {
		image  ImageTag
		suffix string
	}{
		{image: "image-name-with-suffix"},
		{image: "image name with  suffix"},
		{image: "image!name", suffix: "with-suffix"},
		{image: "image!&+=*name", suffix: "with-suffix"},
	}

	for _, tc := range tests {
		if got := ContainerName(tc.image, tc.suffix); got != "image-name-with-suffix" {
			t.Errorf("ContainerName(%q, %q) = %q", tc.image, tc.suffix, got)
		}
	}
}

func TestInvocationArgv(t *testing.T) {
	inv := Invocation{
		Subcommand: SubcommandRun,
		Args:       []string{"--rm", "--name", "project-run"},
		Target:     "project",
		Command:    []string{"kedro", "run"},
	}
	expected := []string{"run", "--rm", "--name", "project-run", "project", "kedro", "run"}
	if got := inv.Argv(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("unexpected argv: %v", got)
	}
}

func TestImageTagIsValid(t *testing.T) {
	if ImageTag("").IsValid() || ImageTag("  ").IsValid() {
		t.Fatal("blank tag reported as valid")
	}
	if !ImageTag("project").IsValid() {
		t.Fatal("tag reported as invalid")
	}
}
