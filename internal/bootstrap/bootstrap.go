package bootstrap

import (
	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	audioinadapter "wird/internal/modules/audio/adapter/in"
	audiooutadapter "wird/internal/modules/audio/adapter/out"
	audioservice "wird/internal/modules/audio/service"
	audiousecase "wird/internal/modules/audio/usecase"
	plugininadapter "wird/internal/modules/plugin/adapter/in"
	pluginoutadapter "wird/internal/modules/plugin/adapter/out"
	pluginservice "wird/internal/modules/plugin/service"
	pluginusecase "wird/internal/modules/plugin/usecase"
	prayerinadapter "wird/internal/modules/prayer/adapter/in"
	prayeroutadapter "wird/internal/modules/prayer/adapter/out"
	prayerservice "wird/internal/modules/prayer/service"
	prayerusecase "wird/internal/modules/prayer/usecase"
	progressinadapter "wird/internal/modules/progress/adapter/in"
	progressoutadapter "wird/internal/modules/progress/adapter/out"
	progressservice "wird/internal/modules/progress/service"
	progressusecase "wird/internal/modules/progress/usecase"
	scriptureinadapter "wird/internal/modules/scripture/adapter/in"
	scriptureoutadapter "wird/internal/modules/scripture/adapter/out"
	scriptureout "wird/internal/modules/scripture/port/out"
	scriptureservice "wird/internal/modules/scripture/service"
	scriptureusecase "wird/internal/modules/scripture/usecase"
	settingsinadapter "wird/internal/modules/settings/adapter/in"
	settingsoutadapter "wird/internal/modules/settings/adapter/out"
	settingsservice "wird/internal/modules/settings/service"
	settingsusecase "wird/internal/modules/settings/usecase"
	"wird/internal/platform/clock"
	"wird/internal/platform/config"
	"wird/internal/platform/id"
	"wird/internal/platform/kv"
	"wird/internal/platform/logging"
	uiapp "wird/internal/ui/app"
)

type App struct {
	ProgressCLI  progressinadapter.CLIHandler
	ScriptureCLI scriptureinadapter.CLIHandler
	PrayerCLI    prayerinadapter.CLIHandler
	SettingsCLI  settingsinadapter.CLIHandler
	PluginCLI    plugininadapter.CLIHandler
	AudioTUI     audioinadapter.TUIHandler

	Logger hclog.Logger
}

// New wires the whole application. Storage degrades to memory when the
// sqlite database cannot be opened so the reader is never locked out.
func New(cfg config.Config) (*App, error) {
	logger := logging.New(cfg.LogLevel)
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	var store kv.Store
	sqliteStore, err := kv.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		logger.Warn("open sqlite store failed, falling back to memory", "path", cfg.DBPath, "error", err)
		store = kv.NewMemoryStore()
	} else {
		store = sqliteStore
	}

	var scriptureCache scriptureout.Cache
	var cacheClearers []progressoutadapter.CacheClearer
	sqliteCache, err := scriptureoutadapter.NewSQLiteCache(cfg.DBPath)
	if err != nil {
		logger.Warn("open scripture cache failed, running uncached", "error", err)
	} else {
		scriptureCache = sqliteCache
		cacheClearers = append(cacheClearers, sqliteCache)
	}

	progressUC := progressusecase.NewInteractor(
		clk,
		ids,
		progressservice.NewRecordService(progressoutadapter.NewKVRecordStore(store), logger),
		progressservice.NewLogService(clk, progressoutadapter.NewKVSessionLogStore(store), logger),
		progressoutadapter.NewFileActiveSessionStore(cfg.DataPath),
		progressoutadapter.NewMarkdownJournalStore(cfg.JournalPath),
		progressoutadapter.NewKVDataWiper(store, cacheClearers...),
		logger,
	)

	pluginUC := pluginusecase.NewInteractor(pluginservice.NewPluginService(
		pluginoutadapter.NewFileManifestStore(cfg.DataPath),
		pluginoutadapter.NewGRPCHost(),
	))
	verseSource := scriptureoutadapter.NewPluginSource(
		scriptureoutadapter.NewAlQuranClient(""),
		pluginUC,
		logger,
	)
	scriptureUC := scriptureusecase.NewInteractor(
		scriptureservice.NewCatalogService(verseSource, scriptureCache, logger),
	)

	prayerUC := prayerusecase.NewInteractor(prayerservice.NewTimesService(
		clk,
		prayeroutadapter.NewAladhanClient(""),
		prayeroutadapter.NewKVTimesCache(store),
		logger,
	))

	settingsUC := settingsusecase.NewInteractor(settingsservice.NewSettingsService(
		settingsoutadapter.NewKVSettingsStore(store),
		logger,
	))

	audioUC := audiousecase.NewInteractor(audioservice.NewPlayerService(
		audiooutadapter.NewExecLauncher(),
		logger,
	))

	return &App{
		ProgressCLI:  progressinadapter.NewCLIHandler(progressUC),
		ScriptureCLI: scriptureinadapter.NewCLIHandler(scriptureUC),
		PrayerCLI:    prayerinadapter.NewCLIHandler(prayerUC),
		SettingsCLI:  settingsinadapter.NewCLIHandler(settingsUC),
		PluginCLI:    plugininadapter.NewCLIHandler(pluginUC),
		AudioTUI:     audioinadapter.NewTUIHandler(audioUC),
		Logger:       logger,
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.ScriptureCLI, app.ProgressCLI, app.PrayerCLI, app.SettingsCLI, app.AudioTUI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
