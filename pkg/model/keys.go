package model

// Well-known Data keys shared by controllers and elements.
const (
	KeyAdmin           = "ADMIN"
	KeyCSRFToken       = "CSRF_TOKEN"
	KeyCurrentActivity = "CURRENT_ACTIVITY"
	KeyActivities      = "ACTIVITIES"
	KeyElement         = "ELEMENT"
	KeyLanguages       = "LANGUAGES"
	KeyLocaleTag       = "LOCALE_TAG"
	KeyUserName        = "USER_NAME"
	KeyStatistics      = "STATISTICS"
	KeyFilter          = "FILTER"
)

// Appearance keys.
const (
	KeySiteName        = "SITE_NAME"
	KeyLogoSmall       = "LOGO_SMALL"
	KeyLogoMedium      = "LOGO_MEDIUM"
	KeyFavicon         = "FAVICON"
	KeyForegroundColor = "FOREGROUND_COLOR"
	KeyBackgroundColor = "BACKGROUND_COLOR"
	KeyBackgroundImage = "BACKGROUND_IMAGE"
	KeyTopColor        = "TOP_COLOR"
	KeySideColor       = "SIDE_COLOR"
	KeyAuxCSS          = "AUX_CSS"
)

// Security and user settings keys.
const (
	KeyCaptchaMode         = "CAPTCHA_MODE"
	KeyCaptchaModes        = "CAPTCHA_MODES"
	KeyAuthenticationMode  = "AUTHENTICATION_MODE"
	KeyAuthenticationModes = "AUTHENTICATION_MODES"
	KeyRecoveryMode        = "RECOVERY_MODE"
	KeyRecoveryModes       = "RECOVERY_MODES"
	KeyAutologout          = "AUTOLOGOUT"
	KeyAutologoutTimes     = "AUTOLOGOUT_TIMES"
	KeyPerPage             = "PER_PAGE"
	KeyPerPageOptions      = "PER_PAGE_OPTIONS"
	KeyOpenInTabs          = "OPEN_IN_TABS"
)

// Management screen keys.
const (
	KeyClassifiers   = "CLASSIFIERS"
	KeyMixes         = "MIXES"
	KeyCurrentIndex  = "CURRENT_INDEX"
	KeyMachines      = "MACHINES"
	KeyMachineNames  = "MACHINE_NAMES"
	KeyCrawlStatus   = "CRAWL_STATUS"
	KeyRecentCrawls  = "RECENT_CRAWLS"
	KeyAdvertisement = "RELEVANT_ADVERTISEMENT"
	KeyLanding       = "LANDING"
	KeyStart         = "START"
	KeyLimit         = "RESULTS_PER_PAGE"
	KeyTotal         = "TOTAL_ROWS"
	KeyQuery         = "QUERY"
)
