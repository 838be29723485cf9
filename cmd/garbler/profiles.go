package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/andesnlp/garbler/corrupt"
	"github.com/andesnlp/garbler/span"
	"github.com/spf13/cobra"
)

var profilesPath string

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the tolerance profiles protecting each entity type",
	RunE:  runProfiles,
}

func init() {
	profilesCmd.Flags().StringVarP(&profilesPath, "profiles", "p", "", "Path to a YAML tolerance-profile table (default: built-in)")
}

func runProfiles(cmd *cobra.Command, args []string) error {
	profiles := corrupt.DefaultProfiles()
	if profilesPath != "" {
		var err error
		if profiles, err = corrupt.LoadProfiles(profilesPath); err != nil {
			return err
		}
	}

	types := make([]string, 0, len(profiles))
	for t := range profiles {
		types = append(types, string(t))
	}
	sort.Strings(types)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tTOLERANCE\tMAX SUBS\tUNSAFE")
	for _, t := range types {
		p := profiles[span.EntityType(t)]
		unsafeNames := make([]string, len(p.Unsafe))
		for i, k := range p.Unsafe {
			unsafeNames[i] = k.String()
		}
		maxSubs := "-"
		if p.MaxSubstitutions > 0 {
			maxSubs = fmt.Sprintf("%d", p.MaxSubstitutions)
		}
		unsafe := "-"
		if len(unsafeNames) > 0 {
			unsafe = strings.Join(unsafeNames, ",")
		}
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\n", t, p.Tolerance, maxSubs, unsafe)
	}
	return w.Flush()
}
