package dto

type PluginInfo struct {
	Name         string
	Version      string
	Enabled      bool
	Binary       string
	Capabilities []string
}

type DoctorResult struct {
	Name            string
	ChecksumValid   bool
	BinaryReachable bool
	LifecycleOK     bool
	Error           string
}

type EditionInfo struct {
	ID       string
	Name     string
	Language string
}

type FetchSurahInput struct {
	PluginName string
	Surah      int
	Edition    string
}

type VerseOutput struct {
	ID          int
	Surah       int
	Ayah        int
	Arabic      string
	Translation string
}
