package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"wird/internal/bootstrap"
	settingsdto "wird/internal/modules/settings/dto"
	"wird/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath, logLevel string

	root := &cobra.Command{
		Use:           "wird",
		Short:         "Quran reading companion",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", ".", "data directory path")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: trace|debug|info|warn|error")

	root.AddCommand(newTUICmd(&dataPath, &logLevel))
	root.AddCommand(newSurahCmd(&dataPath, &logLevel))
	root.AddCommand(newSearchCmd(&dataPath, &logLevel))
	root.AddCommand(newReciterCmd(&dataPath, &logLevel))
	root.AddCommand(newSessionCmd(&dataPath, &logLevel))
	root.AddCommand(newBookmarkCmd(&dataPath, &logLevel))
	root.AddCommand(newCompleteCmd(&dataPath, &logLevel))
	root.AddCommand(newGoalCmd(&dataPath, &logLevel))
	root.AddCommand(newPositionCmd(&dataPath, &logLevel))
	root.AddCommand(newStatsCmd(&dataPath, &logLevel))
	root.AddCommand(newPrayerCmd(&dataPath, &logLevel))
	root.AddCommand(newSettingsCmd(&dataPath, &logLevel))
	root.AddCommand(newPluginCmd(&dataPath, &logLevel))
	root.AddCommand(newDataCmd(&dataPath, &logLevel))
	return root
}

func loadApp(dataPath, logLevel string) (*bootstrap.App, error) {
	cfg, err := config.New(dataPath, logLevel)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run wird terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newSurahCmd(dataPath, logLevel *string) *cobra.Command {
	surah := &cobra.Command{Use: "surah", Short: "Surah catalog commands"}

	surah.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all surahs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			surahs, err := app.ScriptureCLI.ListSurahs(context.Background())
			if err != nil {
				return err
			}
			for _, s := range surahs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d ayahs\t%s\n", s.Number, s.EnglishName, s.Name, s.AyahCount, s.RevelationType)
			}
			return nil
		},
	})

	var number int
	var edition string
	show := &cobra.Command{
		Use:   "show --number <n>",
		Short: "Show the verses of one surah",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			verses, err := app.ScriptureCLI.GetSurah(context.Background(), number, edition)
			if err != nil {
				return err
			}
			for _, v := range verses {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\n\t%s\n", v.Surah, v.Ayah, v.Arabic, v.Translation)
			}
			return nil
		},
	}
	show.Flags().IntVar(&number, "number", 1, "surah number (1..114)")
	show.Flags().StringVar(&edition, "edition", "", "translation edition")
	surah.AddCommand(show)
	return surah
}

func newSearchCmd(dataPath, logLevel *string) *cobra.Command {
	var edition string
	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Search verse translations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			verses, err := app.ScriptureCLI.Search(context.Background(), args[0], edition)
			if err != nil {
				return err
			}
			if len(verses) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no matches")
				return nil
			}
			for _, v := range verses {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\n", v.Surah, v.Ayah, v.Translation)
			}
			return nil
		},
	}
	search.Flags().StringVar(&edition, "edition", "", "translation edition")
	return search
}

func newReciterCmd(dataPath, logLevel *string) *cobra.Command {
	reciter := &cobra.Command{Use: "reciter", Short: "Recitation catalog commands"}
	reciter.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available reciters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			reciters, err := app.ScriptureCLI.ListReciters(context.Background())
			if err != nil {
				return err
			}
			for _, r := range reciters {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", r.ID, r.Name, r.Style)
			}
			return nil
		},
	})
	return reciter
}

func newSessionCmd(dataPath, logLevel *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Reading session lifecycle"}

	var surah, ayah int
	start := &cobra.Command{
		Use:   "start",
		Short: "Start a reading session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			out, err := app.ProgressCLI.StartSession(context.Background(), surah, ayah)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session started: %s at=%s\n", out.SessionID, out.StartedAt.Format("2006-01-02T15:04:05Z07:00"))
			return nil
		},
	}
	start.Flags().IntVar(&surah, "surah", 0, "starting surah (defaults to saved position)")
	start.Flags().IntVar(&ayah, "ayah", 0, "starting ayah (defaults to saved position)")

	var sessionID string
	var versesRead int
	var surahsRead []int
	end := &cobra.Command{
		Use:   "end",
		Short: "End the active session and record it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			out, err := app.ProgressCLI.EndSession(context.Background(), sessionID, versesRead, surahsRead)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session ended: %s duration=%dmin recorded=%t", out.SessionID, out.DurationMin, out.Recorded)
			if out.JournalPath != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), " note=%s", out.JournalPath)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	end.Flags().StringVar(&sessionID, "session-id", "", "optional session id (defaults to active session)")
	end.Flags().IntVar(&versesRead, "verses", 0, "verses read during the session")
	end.Flags().IntSliceVar(&surahsRead, "surahs", nil, "surahs touched during the session")

	session.AddCommand(start, end, &cobra.Command{
		Use:   "active",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			out, err := app.ProgressCLI.GetActive(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session=%s position=%d:%d started=%s\n", out.SessionID, out.Surah, out.Ayah, out.StartedAt.Format("2006-01-02T15:04:05Z07:00"))
			return nil
		},
	})
	return session
}

func newBookmarkCmd(dataPath, logLevel *string) *cobra.Command {
	bookmark := &cobra.Command{Use: "bookmark", Short: "Verse bookmark commands"}

	var verseID int
	add := &cobra.Command{
		Use:   "add --verse <id>",
		Short: "Bookmark a verse",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			if err := app.ProgressCLI.AddBookmark(context.Background(), verseID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "bookmarked verse %d\n", verseID)
			return nil
		},
	}
	add.Flags().IntVar(&verseID, "verse", 0, "global verse id")

	var removeID int
	remove := &cobra.Command{
		Use:   "remove --verse <id>",
		Short: "Remove a verse bookmark",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			if err := app.ProgressCLI.RemoveBookmark(context.Background(), removeID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed bookmark %d\n", removeID)
			return nil
		},
	}
	remove.Flags().IntVar(&removeID, "verse", 0, "global verse id")

	var toggleID int
	toggle := &cobra.Command{
		Use:   "toggle --verse <id>",
		Short: "Toggle a verse bookmark",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			bookmarked, err := app.ProgressCLI.ToggleBookmark(context.Background(), toggleID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "verse %d bookmarked=%t\n", toggleID, bookmarked)
			return nil
		},
	}
	toggle.Flags().IntVar(&toggleID, "verse", 0, "global verse id")

	bookmark.AddCommand(add, remove, toggle, &cobra.Command{
		Use:   "list",
		Short: "List bookmarked verses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			record, err := app.ProgressCLI.Record(context.Background())
			if err != nil {
				return err
			}
			if len(record.Bookmarks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no bookmarks")
				return nil
			}
			for _, id := range record.Bookmarks {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	})
	return bookmark
}

func newCompleteCmd(dataPath, logLevel *string) *cobra.Command {
	var surah int
	complete := &cobra.Command{
		Use:   "complete --surah <n>",
		Short: "Mark a surah as completed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			if err := app.ProgressCLI.MarkSurahCompleted(context.Background(), surah); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "surah %d marked completed\n", surah)
			return nil
		},
	}
	complete.Flags().IntVar(&surah, "surah", 0, "surah number (1..114)")
	return complete
}

func newGoalCmd(dataPath, logLevel *string) *cobra.Command {
	var minutes int
	goal := &cobra.Command{
		Use:   "goal --minutes <n>",
		Short: "Set the daily reading goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			if err := app.ProgressCLI.SetDailyGoal(context.Background(), minutes); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "daily goal set to %d minutes\n", minutes)
			return nil
		},
	}
	goal.Flags().IntVar(&minutes, "minutes", 0, "daily goal in minutes")
	return goal
}

func newPositionCmd(dataPath, logLevel *string) *cobra.Command {
	var surah, ayah int
	position := &cobra.Command{
		Use:   "position --surah <n> --ayah <m>",
		Short: "Save the current reading position",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			if err := app.ProgressCLI.SetPosition(context.Background(), surah, ayah); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "position saved: %d:%d\n", surah, ayah)
			return nil
		},
	}
	position.Flags().IntVar(&surah, "surah", 0, "surah number")
	position.Flags().IntVar(&ayah, "ayah", 0, "ayah number")
	return position
}

func newStatsCmd(dataPath, logLevel *string) *cobra.Command {
	var week, month bool
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show reading progress and streaks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			ctx := context.Background()
			if week || month {
				out, err := app.ProgressCLI.WeeklyStats(ctx)
				if month {
					out, err = app.ProgressCLI.MonthlyStats(ctx)
				}
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "minutes=%d verses=%d days_active=%d avg_daily=%dmin\n", out.TotalMinutes, out.TotalVerses, out.DaysActive, out.AverageDaily)
				return nil
			}
			out, err := app.ProgressCLI.Overview(ctx)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "today=%dmin goal=%dmin (%d%%) streak=%d days total=%dmin\n",
				out.TodayMinutes, out.DailyGoalMin, out.GoalPercent, out.CurrentStreak, out.TotalReadingMin)
			return nil
		},
	}
	stats.Flags().BoolVar(&week, "week", false, "show the last 7 days")
	stats.Flags().BoolVar(&month, "month", false, "show the last 30 days")
	return stats
}

func newPrayerCmd(dataPath, logLevel *string) *cobra.Command {
	var next bool
	var latitude, longitude float64
	prayer := &cobra.Command{
		Use:   "prayer",
		Short: "Show today's prayer times",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			ctx := context.Background()
			if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
				settings, err := app.SettingsCLI.Get(ctx)
				if err != nil {
					return err
				}
				latitude, longitude = settings.Latitude, settings.Longitude
			}
			if next {
				out, err := app.PrayerCLI.NextPrayer(ctx, latitude, longitude)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "next: %s at %s\n", out.Name, out.Formatted)
				return nil
			}
			out, err := app.PrayerCLI.Times(ctx, latitude, longitude)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "fajr=%s sunrise=%s dhuhr=%s asr=%s maghrib=%s isha=%s\n",
				out.Fajr, out.Sunrise, out.Dhuhr, out.Asr, out.Maghrib, out.Isha)
			return nil
		},
	}
	prayer.Flags().BoolVar(&next, "next", false, "show only the next prayer")
	prayer.Flags().Float64Var(&latitude, "lat", 0, "latitude (defaults to saved location)")
	prayer.Flags().Float64Var(&longitude, "lon", 0, "longitude (defaults to saved location)")
	return prayer
}

func newSettingsCmd(dataPath, logLevel *string) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Reader settings"}

	settings.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			out, err := app.SettingsCLI.Get(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "translation: %s\nreciter: %s\ntheme: %s\narabic_font: %d\ntranslation_font: %d\nauto_play: %t\nnotifications: %t\nlocation: %s (%.2f, %.2f)\n",
				out.TranslationEdition, out.Reciter, out.Theme, out.ArabicFontSize, out.TranslationFont, out.AutoPlay, out.Notifications, out.City, out.Latitude, out.Longitude)
			return nil
		},
	})

	var translation, reciter, theme, city string
	var arabicFont, translationFont int
	var autoPlay, notifications bool
	var latitude, longitude float64
	set := &cobra.Command{
		Use:   "set",
		Short: "Update settings (only supplied flags change)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			var input settingsdto.UpdateInput
			if cmd.Flags().Changed("translation") {
				input.TranslationEdition = &translation
			}
			if cmd.Flags().Changed("reciter") {
				input.Reciter = &reciter
			}
			if cmd.Flags().Changed("theme") {
				input.Theme = &theme
			}
			if cmd.Flags().Changed("arabic-font") {
				input.ArabicFontSize = &arabicFont
			}
			if cmd.Flags().Changed("translation-font") {
				input.TranslationFont = &translationFont
			}
			if cmd.Flags().Changed("auto-play") {
				input.AutoPlay = &autoPlay
			}
			if cmd.Flags().Changed("notifications") {
				input.Notifications = &notifications
			}
			if cmd.Flags().Changed("lat") {
				input.Latitude = &latitude
			}
			if cmd.Flags().Changed("lon") {
				input.Longitude = &longitude
			}
			if cmd.Flags().Changed("city") {
				input.City = &city
			}
			out, err := app.SettingsCLI.Update(context.Background(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "settings updated: translation=%s reciter=%s theme=%s\n", out.TranslationEdition, out.Reciter, out.Theme)
			return nil
		},
	}
	set.Flags().StringVar(&translation, "translation", "", "translation edition")
	set.Flags().StringVar(&reciter, "reciter", "", "reciter id")
	set.Flags().StringVar(&theme, "theme", "", "theme: light|dark")
	set.Flags().IntVar(&arabicFont, "arabic-font", 0, "arabic font size")
	set.Flags().IntVar(&translationFont, "translation-font", 0, "translation font size")
	set.Flags().BoolVar(&autoPlay, "auto-play", false, "auto play next verse")
	set.Flags().BoolVar(&notifications, "notifications", false, "prayer notifications")
	set.Flags().Float64Var(&latitude, "lat", 0, "location latitude")
	set.Flags().Float64Var(&longitude, "lon", 0, "location longitude")
	set.Flags().StringVar(&city, "city", "", "location city name")
	settings.AddCommand(set)
	return settings
}

func newPluginCmd(dataPath, logLevel *string) *cobra.Command {
	plugin := &cobra.Command{Use: "plugin", Short: "Translation plugin operations"}

	plugin.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List plugin manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			plugins, err := app.PluginCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(plugins) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
				return nil
			}
			for _, p := range plugins {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s enabled=%t capabilities=%s binary=%s\n", p.Name, p.Version, p.Enabled, strings.Join(p.Capabilities, ","), p.Binary)
			}
			return nil
		},
	})

	plugin.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate plugin checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			results, err := app.PluginCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
				return nil
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s checksum=%t binary=%t lifecycle=%t", r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK)
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})

	var editionsPluginName string
	editionsCmd := &cobra.Command{
		Use:   "editions --plugin <name>",
		Short: "List editions served by a plugin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(editionsPluginName) == "" {
				return fmt.Errorf("--plugin is required")
			}
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			editions, err := app.PluginCLI.ListEditions(context.Background(), editionsPluginName)
			if err != nil {
				return err
			}
			if len(editions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no editions")
				return nil
			}
			for _, e := range editions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", e.ID, e.Name, e.Language)
			}
			return nil
		},
	}
	editionsCmd.Flags().StringVar(&editionsPluginName, "plugin", "", "plugin name")
	plugin.AddCommand(editionsCmd)

	var fetchPluginName, fetchEdition string
	var fetchSurah int
	fetchCmd := &cobra.Command{
		Use:   "fetch --plugin <name> --surah <n> --edition <id>",
		Short: "Fetch a surah through a plugin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(fetchPluginName) == "" {
				return fmt.Errorf("--plugin is required")
			}
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			verses, err := app.PluginCLI.FetchSurah(context.Background(), fetchPluginName, fetchSurah, fetchEdition)
			if err != nil {
				return err
			}
			for _, v := range verses {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\n", v.Surah, v.Ayah, v.Translation)
			}
			return nil
		},
	}
	fetchCmd.Flags().StringVar(&fetchPluginName, "plugin", "", "plugin name")
	fetchCmd.Flags().IntVar(&fetchSurah, "surah", 1, "surah number (1..114)")
	fetchCmd.Flags().StringVar(&fetchEdition, "edition", "", "edition id")
	plugin.AddCommand(fetchCmd)
	return plugin
}

func newDataCmd(dataPath, logLevel *string) *cobra.Command {
	data := &cobra.Command{Use: "data", Short: "Local data management"}
	var confirmed bool
	clear := &cobra.Command{
		Use:   "clear --yes",
		Short: "Erase all progress, sessions, and settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return fmt.Errorf("--yes is required to erase local data")
			}
			app, err := loadApp(*dataPath, *logLevel)
			if err != nil {
				return err
			}
			if err := app.ProgressCLI.ClearAll(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "local data cleared")
			return nil
		},
	}
	clear.Flags().BoolVar(&confirmed, "yes", false, "confirm erasure")
	data.AddCommand(clear)
	return data
}
