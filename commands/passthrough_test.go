package commands

import (
	"reflect"
	"testing"

	"github.com/outofforest/ioc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/outofforest/kedro-docker/config"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("image", "", "")
	flags.String("docker-args", "", "")
	flags.Int("port", 8888, "")
	flags.Bool("mount-volumes", false, "")
	flags.StringP("ci-config-path", "c", "", "")
	flags.BoolP("help", "h", false, "")
	return flags
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		own       []string
		forwarded []string
	}{
		{
			name:      "empty",
			args:      nil,
			own:       nil,
			forwarded: nil,
		},
		{
			name:      "interspersed",
			args:      []string{"--pipeline", "ds", "--image", "custom", "--env=test"},
			own:       []string{"--image", "custom"},
			forwarded: []string{"--pipeline", "ds", "--env=test"},
		},
		{
			name:      "inline values",
			args:      []string{"--port=8080", "--docker-args=-v /a:/b"},
			own:       []string{"--port=8080", "--docker-args=-v /a:/b"},
			forwarded: nil,
		},
		{
			name:      "bool flag takes no value",
			args:      []string{"--mount-volumes", "ls"},
			own:       []string{"--mount-volumes"},
			forwarded: []string{"ls"},
		},
		{
			name:      "shorthand",
			args:      []string{"-c", "ci.yaml", "-cother.yaml", "-it", "-h"},
			own:       []string{"-c", "ci.yaml", "-cother.yaml", "-h"},
			forwarded: []string{"-it"},
		},
		{
			name:      "terminator",
			args:      []string{"--image", "custom", "--", "--image", "other"},
			own:       []string{"--image", "custom"},
			forwarded: []string{"--image", "other"},
		},
		{
			name:      "commands",
			args:      []string{"ls", "-la", "-"},
			own:       nil,
			forwarded: []string{"ls", "-la", "-"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			own, forwarded := SplitArgs(testFlags(), tc.args)
			if !reflect.DeepEqual(own, tc.own) {
				t.Errorf("own: expected %v, got %v", tc.own, own)
			}
			if !reflect.DeepEqual(forwarded, tc.forwarded) {
				t.Errorf("forwarded: expected %v, got %v", tc.forwarded, forwarded)
			}
		})
	}
}

func TestKnownFlagsIncludeInherited(t *testing.T) {
	var engine, image string
	root := &cobra.Command{Use: "docker"}
	root.PersistentFlags().StringVar(&engine, "engine", "docker", "")
	child := &cobra.Command{Use: "run", DisableFlagParsing: true, Run: func(*cobra.Command, []string) {}}
	child.Flags().StringVar(&image, "image", "", "")
	root.AddCommand(child)

	flags := knownFlags(child)
	own, forwarded := SplitArgs(flags, []string{"--engine", "podman", "--pipeline", "ds", "--image=custom"})
	if err := flags.Parse(own); err != nil {
		t.Fatal(err)
	}

	if engine != "podman" || image != "custom" {
		t.Errorf("flags not bound: engine=%s image=%s", engine, image)
	}
	if !reflect.DeepEqual(forwarded, []string{"--pipeline", "ds"}) {
		t.Errorf("unexpected forwarded args: %v", forwarded)
	}
}

func TestLoggerFlagsNotForwarded(t *testing.T) {
	c := ioc.New()
	c.Singleton(NewCmdFactory)
	c.Singleton(config.NewRootFactory)
	c.Singleton(NewRootCommand)
	c.SingletonNamed("run", NewRunCommand)

	var rootCmd *cobra.Command
	c.Resolve(&rootCmd)
	runCmd, _, err := rootCmd.Find([]string{"run"})
	if err != nil {
		t.Fatal(err)
	}

	own, forwarded := SplitArgs(knownFlags(runCmd), []string{"--log-format", "json", "--pipeline", "ds", "-v"})
	if !reflect.DeepEqual(own, []string{"--log-format", "json", "-v"}) {
		t.Errorf("unexpected own args: %v", own)
	}
	if !reflect.DeepEqual(forwarded, []string{"--pipeline", "ds"}) {
		t.Errorf("unexpected forwarded args: %v", forwarded)
	}
}
