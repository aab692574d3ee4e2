package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/checklist"
	"github.com/iWorld-y/creator_studio/app/creator_studio/pkg/model"
)

type pitchFlags struct {
	author   string
	title    string
	category string
	style    string
	link     string
}

func (f *pitchFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.author, "author", "", "Author or artist name")
	cmd.Flags().StringVar(&f.title, "title", "", "Content title")
	cmd.Flags().StringVar(&f.category, "category", "music", "Category (music, video, podcast, post, other)")
	cmd.Flags().StringVar(&f.style, "style", "", "Style or tone")
	cmd.Flags().StringVar(&f.link, "link", "", "Content link")
}

func (f *pitchFlags) request() model.PitchRequest {
	return model.PitchRequest{
		AuthorName:   f.author,
		ContentTitle: f.title,
		Category:     model.ParseCategory(f.category),
		Style:        f.style,
		Link:         f.link,
	}
}

func requireFlag(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("--%s is required", name)
	}
	return nil
}

func newPitchCommand(ctx *commandContext) *cobra.Command {
	var flags pitchFlags
	cmd := &cobra.Command{
		Use:   "pitch",
		Short: "Generate a pitch email for curators and brands",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("author", flags.author); err != nil {
				return err
			}
			if err := requireFlag("title", flags.title); err != nil {
				return err
			}
			locale, err := ctx.locale()
			if err != nil {
				return err
			}
			gen, err := ctx.generator(cmd.Context())
			if err != nil {
				return err
			}
			pitch, err := gen.GeneratePitch(cmd.Context(), flags.request(), locale)
			if err != nil {
				return err
			}
			if ctx.jsonFlag {
				return writeJSON(cmd, map[string]string{"pitch": pitch})
			}
			fmt.Fprintln(cmd.OutOrStdout(), pitch)
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}

func newFitCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "fit <description>",
		Short: "Score how well content fits the channel (0-100)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locale, err := ctx.locale()
			if err != nil {
				return err
			}
			gen, err := ctx.generator(cmd.Context())
			if err != nil {
				return err
			}
			out, err := gen.AnalyzeFit(cmd.Context(), strings.Join(args, " "), locale)
			if err != nil {
				return err
			}
			if ctx.jsonFlag {
				return writeJSON(cmd, out)
			}
			printFields(cmd, "Vibe analysis", [][2]string{
				{"Score", fmt.Sprintf("%d/100", out.Score)},
				{"Feedback", out.Feedback},
			})
			return nil
		},
	}
}

func newKitCommand(ctx *commandContext) *cobra.Command {
	var flags pitchFlags
	cmd := &cobra.Command{
		Use:   "kit",
		Short: "Generate a multi-platform promotion kit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("title", flags.title); err != nil {
				return err
			}
			locale, err := ctx.locale()
			if err != nil {
				return err
			}
			gen, err := ctx.generator(cmd.Context())
			if err != nil {
				return err
			}
			kit, err := gen.GeneratePromotionKit(cmd.Context(), flags.request(), locale)
			if err != nil {
				return err
			}
			if ctx.jsonFlag {
				return writeJSON(cmd, kit)
			}
			printFields(cmd, "Promotion kit", [][2]string{
				{"YouTube title", kit.YoutubeTitle},
				{"YouTube description", kit.YoutubeDescription},
				{"Instagram caption", kit.InstagramCaption},
				{"TikTok caption", kit.TiktokCaption},
				{"TikTok script", kit.TiktokScript},
				{"X/Twitter post", kit.TwitterPost},
				{"Hashtags", strings.Join(kit.Hashtags, " ")},
				{"Keywords", strings.Join(kit.Keywords, ", ")},
				{"Launch strategy", kit.LaunchStrategy},
			})
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}

func newAudienceCommand(ctx *commandContext) *cobra.Command {
	var title, link string
	cmd := &cobra.Command{
		Use:   "audience",
		Short: "Simulate audience insights for a release",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("title", title); err != nil {
				return err
			}
			locale, err := ctx.locale()
			if err != nil {
				return err
			}
			gen, err := ctx.generator(cmd.Context())
			if err != nil {
				return err
			}
			out, err := gen.GenerateAudienceInsights(cmd.Context(), link, title, locale)
			if err != nil {
				return err
			}
			if ctx.jsonFlag {
				return writeJSON(cmd, out)
			}
			rows := make([][]string, 0, len(out.Alerts))
			for _, a := range out.Alerts {
				rows = append(rows, []string{string(a.Type), a.Title, a.Message})
			}
			printTable(cmd, "Alerts", []string{"Type", "Title", "Message"}, rows)
			printFields(cmd, "Audience", [][2]string{
				{"Peak hour", out.PeakHour},
				{"Best region", out.BestRegion},
				{"Engagement tips", bullets(out.EngagementTips)},
			})
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Content title")
	cmd.Flags().StringVar(&link, "link", "", "Content link")
	return cmd
}

func newScheduleCommand(ctx *commandContext) *cobra.Command {
	var title, date string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Build a 10-day release schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("title", title); err != nil {
				return err
			}
			if err := requireFlag("date", date); err != nil {
				return err
			}
			locale, err := ctx.locale()
			if err != nil {
				return err
			}
			gen, err := ctx.generator(cmd.Context())
			if err != nil {
				return err
			}
			events, err := gen.GenerateReleaseSchedule(cmd.Context(), title, date, locale)
			if err != nil {
				return err
			}
			if ctx.jsonFlag {
				return writeJSON(cmd, events)
			}
			rows := make([][]string, 0, len(events))
			for _, ev := range events {
				rows = append(rows, []string{ev.Day, string(ev.Platform), ev.RecommendedTime, ev.Action, ev.ContentIdea})
			}
			printTable(cmd, "Release schedule", []string{"Day", "Platform", "Time", "Action", "Idea"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Content title")
	cmd.Flags().StringVar(&date, "date", "", "Release date (e.g. 2025-03-01)")
	return cmd
}

func newCutsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cuts <description>",
		Short: "Suggest short-form cut points for a video",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locale, err := ctx.locale()
			if err != nil {
				return err
			}
			gen, err := ctx.generator(cmd.Context())
			if err != nil {
				return err
			}
			cuts, err := gen.SuggestVideoCuts(cmd.Context(), strings.Join(args, " "), locale)
			if err != nil {
				return err
			}
			if ctx.jsonFlag {
				return writeJSON(cmd, cuts)
			}
			rows := make([][]string, 0, len(cuts))
			for _, c := range cuts {
				rows = append(rows, []string{c.Timestamp, c.Hook, c.Reason})
			}
			printTable(cmd, "Video cuts", []string{"Timestamp", "Hook", "Reason"}, rows)
			return nil
		},
	}
}

func newDistributionCommand(ctx *commandContext) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "distribution",
		Short: "Prepare per-platform distribution settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("title", title); err != nil {
				return err
			}
			locale, err := ctx.locale()
			if err != nil {
				return err
			}
			gen, err := ctx.generator(cmd.Context())
			if err != nil {
				return err
			}
			formats, err := gen.PrepareDistributionConfig(cmd.Context(), title, locale)
			if err != nil {
				return err
			}
			if ctx.jsonFlag {
				return writeJSON(cmd, formats)
			}
			rows := make([][]string, 0, len(formats))
			for _, f := range formats {
				rows = append(rows, []string{f.Platform, f.AspectRatio, f.MaxDuration, f.OptimizationNote, f.SuggestedAction})
			}
			printTable(cmd, "Distribution", []string{"Platform", "Ratio", "Max", "Note", "Action"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Content title")
	return cmd
}

func newTrendsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "trends",
		Short: "Show current content trends",
		RunE: func(cmd *cobra.Command, args []string) error {
			locale, err := ctx.locale()
			if err != nil {
				return err
			}
			gen, err := ctx.generator(cmd.Context())
			if err != nil {
				return err
			}
			report, err := gen.GetContentTrends(cmd.Context(), locale)
			if err != nil {
				return err
			}
			if ctx.jsonFlag {
				return writeJSON(cmd, report)
			}
			topics := make([][]string, 0, len(report.TrendingTopics))
			for _, t := range report.TrendingTopics {
				topics = append(topics, []string{t.Name, t.Growth})
			}
			printTable(cmd, "Trending topics", []string{"Topic", "Growth"}, topics)

			times := make([][]string, 0, len(report.BestPostingTimes))
			for _, p := range report.BestPostingTimes {
				times = append(times, []string{p.Platform, p.Time})
			}
			printTable(cmd, "Best posting times", []string{"Platform", "Time"}, times)

			ideas := make([][]string, 0, len(report.DailyContentSuggestions))
			for _, s := range report.DailyContentSuggestions {
				ideas = append(ideas, []string{s.Title, s.Idea})
			}
			printTable(cmd, "Daily ideas", []string{"Title", "Idea"}, ideas)
			fmt.Fprintf(cmd.OutOrStdout(), "Hashtags: %s\n", strings.Join(report.TrendingHashtags, " "))
			return nil
		},
	}
}

func newThumbnailCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "thumbnail <prompt>",
		Short: "Ask for a thumbnail image URL",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locale, err := ctx.locale()
			if err != nil {
				return err
			}
			gen, err := ctx.generator(cmd.Context())
			if err != nil {
				return err
			}
			url, err := gen.GenerateThumbnail(cmd.Context(), strings.Join(args, " "), locale)
			if err != nil {
				return err
			}
			if ctx.jsonFlag {
				return writeJSON(cmd, map[string]string{"url": url})
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
}

func newVideoAnalysisCommand(ctx *commandContext) *cobra.Command {
	var content, source, mode string
	cmd := &cobra.Command{
		Use:   "video-analysis",
		Short: "Analyze a video's content strategy (score 0-10)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag("content", content); err != nil {
				return err
			}
			locale, err := ctx.locale()
			if err != nil {
				return err
			}
			gen, err := ctx.generator(cmd.Context())
			if err != nil {
				return err
			}
			out, err := gen.AnalyzeVideoStrategy(cmd.Context(), model.VideoAnalysisRequest{
				Content: content,
				Source:  model.ContentSource(source),
				Mode:    model.ContentMode(mode),
			}, locale)
			if err != nil {
				return err
			}
			if ctx.jsonFlag {
				return writeJSON(cmd, out)
			}
			printFields(cmd, "Video analysis", [][2]string{
				{"Score", fmt.Sprintf("%d/10", out.Score)},
				{"Viral potential", out.ViralPotential},
				{"Verdict", out.Verdict},
				{"Positives", bullets(out.Positives)},
				{"Negatives", bullets(out.Negatives)},
				{"Improvements", bullets(out.Improvements)},
				{"Suggestions", bullets(out.Suggestions)},
			})
			return nil
		},
	}
	cmd.Flags().StringVar(&content, "content", "", "Video link or file name")
	cmd.Flags().StringVar(&source, "source", "link", "Content source (link or file)")
	cmd.Flags().StringVar(&mode, "mode", "short", "Content mode (music, short, long, ad)")
	return cmd
}

func newChecklistCommand(ctx *commandContext) *cobra.Command {
	var checked []int
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Show the pre-release promotion checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			locale, err := ctx.locale()
			if err != nil {
				return err
			}
			items := checklist.Check(checklist.Default(locale), checked...)
			progress := checklist.Progress(items)
			if ctx.jsonFlag {
				return writeJSON(cmd, map[string]any{"items": items, "progress": progress})
			}
			rows := make([][]string, 0, len(items))
			for _, it := range items {
				mark := "[ ]"
				if it.Checked {
					mark = "[x]"
				}
				rows = append(rows, []string{strconv.Itoa(it.ID), mark, it.Text})
			}
			printTable(cmd, fmt.Sprintf("Checklist %d%%", progress), []string{"#", "Done", "Item"}, rows)
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&checked, "check", nil, "Mark item IDs as done (repeatable)")
	return cmd
}
