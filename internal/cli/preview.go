package cli

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mhelmke/wikicloud/pkg/cloud"
	"github.com/mhelmke/wikicloud/pkg/pipeline"
	"github.com/mhelmke/wikicloud/pkg/render/term"
)

// previewCommand creates the interactive terminal preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var opts sourceOpts

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview a tag cloud interactively in the terminal",
		Long: `Preview a tag cloud in the terminal. Press r to reshuffle the
entries, c to toggle raw counts, and q to quit. Selection and sizing stay
fixed across reshuffles; only the arrangement changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.input == "" && opts.mongoURI == "" {
				return fmt.Errorf("either --input or --mongo-uri is required")
			}
			return c.runPreview(cmd.Context(), collectAttrs(cmd), opts)
		},
	}

	addSourceFlags(cmd, &opts)
	addAttrFlags(cmd)

	return cmd
}

// runPreview fetches and shapes the cloud, then hands it to bubbletea.
func (c *CLI) runPreview(ctx context.Context, attrs map[string]string, opts sourceOpts) error {
	logger := loggerFromContext(ctx)

	src, closeSource, err := c.openSource(ctx, opts)
	if err != nil {
		return err
	}
	defer closeSource()

	runner := pipeline.NewRunner(src, newResolver("", ""), nil, logger)
	res, err := runner.Execute(ctx, attrs)
	if err != nil {
		return err
	}
	if len(res.Entries) == 0 {
		printWarning("No categories matched the filters")
		return nil
	}

	model := newPreviewModel(res.Entries, res.Config)
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}

// previewModel is the bubbletea model for the interactive preview.
type previewModel struct {
	entries  []cloud.Entry
	cfg      cloud.Config
	rng      *rand.Rand
	width    int
	counts   bool
	shuffles int
}

func newPreviewModel(entries []cloud.Entry, cfg cloud.Config) previewModel {
	return previewModel{
		entries: entries,
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		width:   term.DefaultWidth,
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r", " ":
			cloud.Shuffle(m.entries, m.rng)
			m.shuffles++
		case "c":
			m.counts = !m.counts
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width - 4
		if m.width < 20 {
			m.width = 20
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Tag Cloud Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("r reshuffle  c counts  q quit"))
	b.WriteString("\n\n")

	b.WriteString(term.Render(m.entries, m.cfg, term.Options{Width: m.width, ShowCounts: m.counts}))
	b.WriteString("\n\n")

	footer := fmt.Sprintf("%d categories", len(m.entries))
	if m.shuffles > 0 {
		footer += fmt.Sprintf("  ·  shuffled ×%d", m.shuffles)
	}
	b.WriteString(StyleDim.Render(footer))
	b.WriteString("\n")

	return b.String()
}
