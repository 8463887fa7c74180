package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/scylladb/termtables"
	"github.com/spf13/cobra"

	"github.com/vit0-9/whois_api/pkg/client"
	"github.com/vit0-9/whois_api/pkg/utils/domain"
)

type field struct {
	label string
	key   string
}

var domainFields = []field{
	{"Domain", "domainName"},
	{"Registrar", "registrar"},
	{"Registered", "registrationDate"},
	{"Expires", "expirationDate"},
	{"Estimated age", "estimatedDomainAge"},
	{"Hostnames", "hostnames"},
}

var contactFields = []field{
	{"Registrant", "registrantName"},
	{"Technical contact", "technicalContactName"},
	{"Administrative contact", "administrativeContactName"},
	{"Contact email", "contactEmail"},
}

type lookupOptions struct {
	server  string
	kind    string
	apex    bool
	asJSON  bool
	timeout time.Duration
}

func lookupEntry() *cobra.Command {
	opts := lookupOptions{}

	cmd := &cobra.Command{
		Use:   "lookup [domain]",
		Short: "Look up registration and contact data of a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			api := client.New(opts.server, nil)
			return runLookup(ctx, api, args[0], opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.server, "server", "s", "http://localhost:8080", "Base URL of the lookup API")
	cmd.Flags().StringVarP(&opts.kind, "type", "t", "all", "Which data to show: all, domain or contact")
	cmd.Flags().BoolVar(&opts.apex, "apex", false, "Reduce the name to its registrable domain first")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print raw JSON instead of a table")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 60*time.Second, "Overall request timeout")

	return cmd
}

func runLookup(ctx context.Context, api *client.Client, name string, opts lookupOptions, out io.Writer) error {
	name = strings.TrimSpace(name)
	if opts.apex {
		apex, err := domain.RegistrableDomain(name)
		if err != nil {
			return fmt.Errorf("cannot determine registrable domain of %q: %w", name, err)
		}
		name = apex
	}

	var (
		record client.Record
		fields []field
		err    error
	)
	switch opts.kind {
	case "all":
		record, err = api.LookupAll(ctx, name)
		fields = append(append([]field{}, domainFields...), contactFields...)
	case "domain":
		record, err = lookupOne(ctx, api, name, "domain")
		fields = domainFields
	case "contact":
		record, err = lookupOne(ctx, api, name, "contact")
		fields = contactFields
	default:
		return fmt.Errorf("unknown type %q: want all, domain or contact", opts.kind)
	}
	if err != nil {
		return errors.New(client.ErrorMessage(err))
	}

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	}

	fmt.Fprintln(out, renderRecord(record, fields))
	return nil
}

func lookupOne(ctx context.Context, api *client.Client, name, recordType string) (client.Record, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}
	return api.Lookup(ctx, name, recordType)
}

func renderRecord(record client.Record, fields []field) string {
	tbl := termtables.CreateTable()
	tbl.AddHeaders("Field", "Value")

	for _, f := range fields {
		tbl.AddRow(f.label, record.Field(f.key))
	}

	return tbl.Render()
}
