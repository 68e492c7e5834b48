package elements

// Element names as registered in the view.
const (
	NameNav            = "nav"
	NameMenu           = "menu"
	NameLanguage       = "language"
	NameAppearance     = "appearance"
	NameSecurity       = "security"
	NameSettings       = "settings"
	NameClassifiers    = "classifiers"
	NameMixes          = "mixes"
	NameManageCrawls   = "managecrawls"
	NameCrawlStatus    = "crawlstatus"
	NameManageMachines = "managemachines"
	NameMachineStatus  = "machinestatus"
	NameTopAd          = "topadvertisement"
	NameSideAd         = "sideadvertisement"
	NameQueryStats     = "querystats"
	NameAdmin          = "admin"
)
