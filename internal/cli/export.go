package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hubver/pkg/ansible"
	apperrors "hubver/pkg/errors"
	"hubver/pkg/hub"
	"hubver/pkg/report"
)

const (
	// defaultAPIURL is the public Automation Hub endpoint.
	defaultAPIURL = "https://console.redhat.com"

	// defaultWorkbookPath is where the xlsx export lands unless overridden.
	defaultWorkbookPath = "/tmp/collections.xlsx"

	// defaultPageLimit is the page size requested from the index endpoints.
	defaultPageLimit = 100
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	apiURL        string // base URL of the hub API
	username      string // basic auth username
	password      string // basic auth password (prompted if empty)
	workbookPath  string // xlsx destination
	noWorkbook    bool   // skip the workbook entirely
	clearWorkbook bool   // remove an existing workbook first
	ignoreAuthors bool   // omit the Authors column
	limit         int    // index page size
}

// exportCommand creates the export command, the tool's main operation.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{
		apiURL:        defaultAPIURL,
		workbookPath:  defaultWorkbookPath,
		clearWorkbook: true,
		limit:         defaultPageLimit,
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Walk all hub collections and report their minimum Ansible version",
		Long: `Walk every collection in the validated and certified content channels,
print the minimum required Ansible core version of each collection's
latest release, and write the results to an xlsx workbook.

Credentials can come from flags or from ~/.config/hubver/config.toml;
if no password is available, you are prompted for one.

Examples:
  hubver export --api-username jdoe
  hubver export --api-username jdoe --workbook ./collections.xlsx
  hubver export --api-username jdoe --no-workbook`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.applyConfigFile(cmd)

			if opts.username == "" {
				return apperrors.New(apperrors.ErrCodeInvalidInput, "no API username given (use --api-username or the config file)")
			}
			if opts.password == "" {
				pw, err := promptPassword(fmt.Sprintf("Password for user %s:", opts.username))
				if err != nil {
					return err
				}
				opts.password = pw
			}

			return c.runExport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.apiURL, "api-url", opts.apiURL, "base URL of the hub API")
	cmd.Flags().StringVar(&opts.username, "api-username", "", "username to authenticate against the API")
	cmd.Flags().StringVar(&opts.password, "api-password", "", "password for the API user (prompted if omitted)")
	cmd.Flags().StringVar(&opts.workbookPath, "workbook", opts.workbookPath, "path to store the workbook (xlsx)")
	cmd.Flags().BoolVar(&opts.noWorkbook, "no-workbook", false, "do not write a workbook")
	cmd.Flags().BoolVar(&opts.clearWorkbook, "clear-workbook", opts.clearWorkbook, "remove an existing workbook file on start")
	cmd.Flags().BoolVar(&opts.ignoreAuthors, "ignore-authors", false, "omit the collection authors from the workbook")
	cmd.Flags().IntVar(&opts.limit, "limit", opts.limit, "page size for index requests")

	return cmd
}

// applyConfigFile fills unset options from the config file. Flags that
// were set explicitly always win. A broken config file is reported as
// a warning, not treated as fatal.
func (o *exportOpts) applyConfigFile(cmd *cobra.Command) {
	cfg, err := loadConfigFile()
	if err != nil {
		printWarning("Ignoring unreadable config file: %v", err)
		return
	}

	flags := cmd.Flags()
	if !flags.Changed("api-url") && cfg.APIURL != "" {
		o.apiURL = cfg.APIURL
	}
	if o.username == "" {
		o.username = cfg.APIUsername
	}
	if o.password == "" {
		o.password = cfg.APIPassword
	}
	if !flags.Changed("workbook") && cfg.WorkbookPath != "" {
		o.workbookPath = cfg.WorkbookPath
	}
}

// runExport walks both channels sequentially, feeding every emitted
// collection to the aggregator, the console, and (unless disabled)
// the workbook. The first failure of any kind aborts the run.
func (c *CLI) runExport(ctx context.Context, opts exportOpts) error {
	logger := loggerFromContext(ctx)

	client := hub.NewClient(hub.Config{
		BaseURL:  opts.apiURL,
		Username: opts.username,
		Password: opts.password,
	}, logger)

	var wb *report.Workbook
	if !opts.noWorkbook {
		var err error
		wb, err = report.NewWorkbook(report.Options{
			Path:           opts.workbookPath,
			IncludeAuthors: !opts.ignoreAuthors,
			ClearExisting:  opts.clearWorkbook,
		})
		if err != nil {
			return err
		}
	}

	agg := report.NewAggregator()
	prog := newProgress(logger)

	for _, ch := range hub.Channels {
		printInfo("Walking %s channel", ch)

		walker := hub.NewWalker(client, ch, opts.limit)
		for {
			rec, err := walker.Next(ctx)
			if err != nil {
				return err
			}
			if rec == nil {
				break
			}

			version, err := ansible.MinorVersion(rec.RequiresAnsible)
			if err != nil {
				return fmt.Errorf("collection %s: %w", rec.FQCN, err)
			}

			agg.Record(version, rec.FQCN, rec.Downloads)
			if wb != nil {
				if err := wb.Append(report.Row{
					Name:      rec.FQCN,
					Channel:   string(rec.Channel),
					Version:   version,
					Downloads: rec.Downloads,
					Authors:   rec.Authors,
				}); err != nil {
					return err
				}
			}
			printCollection(rec.FQCN, rec.Downloads, version)
		}
	}

	for _, v := range agg.Versions() {
		logger.Infof("ansible %s: %d collections", v, len(agg.Bucket(v)))
	}
	prog.done(fmt.Sprintf("Processed %d collections across %d ansible versions", agg.Total(), len(agg.Versions())))

	if wb != nil {
		if err := wb.Save(); err != nil {
			return err
		}
		printSuccess("Wrote workbook")
		printFile(opts.workbookPath)
	}
	return nil
}
