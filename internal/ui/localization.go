package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyHomePrompt        = "home_prompt"
	KeyInstructionsTile  = "instructions_tile"
	KeyMysteryTile       = "mystery_tile"
	KeyAppInfo           = "app_info"
	KeyBack              = "back"
	KeyPlayCall          = "play_call"
	KeyMysteryTitle      = "mystery_title"
	KeyGuessPrompt       = "guess_prompt"
	KeyCorrectFormat     = "correct_format"
	KeyWrongFormat       = "wrong_format"
	KeyTryAgain          = "try_again"
	KeyInstructionsTitle = "instructions_title"
	KeyFrequencyText     = "frequency_text"
	KeyAmplitudeText     = "amplitude_text"
	KeyGreenBoxText      = "green_box_text"
	KeyYellowBoxText     = "yellow_box_text"
	KeyCredits           = "credits"
	KeyExitTitle         = "exit_title"
	KeyExitConfirm       = "exit_confirm"
	KeyYes               = "yes"
	KeyNo                = "no"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyAssetsDirectory   = "assets_directory"
	KeyTransition        = "transition"
	KeyShowCaptions      = "show_captions"
	KeyFullscreen        = "fullscreen"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyScreenUnavailable = "screen_unavailable"
	KeyScreenFailed      = "screen_failed"
	KeyNoFrogSelected    = "no_frog_selected"
	KeyErrorPlayingCall  = "error_playing_call"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown languages are ignored.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Litoria's Wetland World",
		KeyHomePrompt:        "Select a frog to see and hear its call",
		KeyInstructionsTile:  "How spectrograms\nshow sound",
		KeyMysteryTile:       "Mystery Frog",
		KeyAppInfo:           "App Info",
		KeyBack:              "Back",
		KeyPlayCall:          "Play call",
		KeyMysteryTitle:      "Mystery Frog Quiz",
		KeyGuessPrompt:       "Guess the Frog:",
		KeyCorrectFormat:     "CORRECT! It's the %s",
		KeyWrongFormat:       "Oops! It was the %s",
		KeyTryAgain:          "Try Again?",
		KeyInstructionsTitle: "Spectrograms display the frequency and amplitude of sound",
		KeyFrequencyText: "Sounds are vibrations and the number of vibrations per second determines the **frequency** or pitch of a sound.\n\n" +
			"**Low pitch:** drum roll, growl\n\n**High pitch:** whistle, jingling keys",
		KeyAmplitudeText: "The size of sound waves determines **amplitude**, the larger the wave, the louder the sound.\n\n" +
			"**Low amplitude:** whispering\n\n**High amplitude:** yelling",
		KeyGreenBoxText:  "The call in the **green box** has a higher **frequency**.",
		KeyYellowBoxText: "The call in the **yellow box** is higher in **amplitude**.",
		KeyCredits: "This app was created and designed by Katie Howard\n" +
			"for the exhibition \"Litoria's Wetland World\".\n\n" +
			"Sound files provided by Arthur Rylah Institute\n" +
			"Spectrograms created using PASE",
		KeyExitTitle:         "Exit Application",
		KeyExitConfirm:       "Do you want to exit the application?",
		KeyYes:               "Yes",
		KeyNo:                "No",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyAssetsDirectory:   "Assets Directory",
		KeyTransition:        "Screen Transition (ms)",
		KeyShowCaptions:      "Show frog names on tiles",
		KeyFullscreen:        "Start fullscreen",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved. Some changes apply after restart.",
		KeyScreenUnavailable: "This screen is not available",
		KeyScreenFailed:      "Could not open this screen",
		KeyNoFrogSelected:    "No frog selected",
		KeyErrorPlayingCall:  "Could not play the call",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "O Mundo Alagado de Litoria",
		KeyHomePrompt:        "Escolha um sapo para ver e ouvir o seu canto",
		KeyInstructionsTile:  "Como os espectrogramas\nmostram o som",
		KeyMysteryTile:       "Sapo Mistério",
		KeyAppInfo:           "Sobre",
		KeyBack:              "Voltar",
		KeyPlayCall:          "Tocar canto",
		KeyMysteryTitle:      "Quiz do Sapo Mistério",
		KeyGuessPrompt:       "Adivinhe o Sapo:",
		KeyCorrectFormat:     "CERTO! É o %s",
		KeyWrongFormat:       "Ops! Era o %s",
		KeyTryAgain:          "Tentar de novo?",
		KeyInstructionsTitle: "Espectrogramas mostram a frequência e a amplitude do som",
		KeyFrequencyText: "Sons são vibrações e o número de vibrações por segundo determina a **frequência** ou altura de um som.\n\n" +
			"**Som grave:** rufar de tambor, rosnado\n\n**Som agudo:** apito, chaves tilintando",
		KeyAmplitudeText: "O tamanho das ondas sonoras determina a **amplitude**, quanto maior a onda, mais alto o som.\n\n" +
			"**Amplitude baixa:** sussurro\n\n**Amplitude alta:** grito",
		KeyGreenBoxText:  "O canto na **caixa verde** tem **frequência** mais alta.",
		KeyYellowBoxText: "O canto na **caixa amarela** tem **amplitude** maior.",
		KeyCredits: "Este aplicativo foi criado e desenhado por Katie Howard\n" +
			"para a exposição \"Litoria's Wetland World\".\n\n" +
			"Arquivos de som fornecidos pelo Arthur Rylah Institute\n" +
			"Espectrogramas criados com PASE",
		KeyExitTitle:         "Sair do Aplicativo",
		KeyExitConfirm:       "Deseja sair do aplicativo?",
		KeyYes:               "Sim",
		KeyNo:                "Não",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyAssetsDirectory:   "Diretório de Recursos",
		KeyTransition:        "Transição de Tela (ms)",
		KeyShowCaptions:      "Mostrar nomes nos blocos",
		KeyFullscreen:        "Iniciar em tela cheia",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas. Algumas mudanças valem após reiniciar.",
		KeyScreenUnavailable: "Esta tela não está disponível",
		KeyScreenFailed:      "Não foi possível abrir esta tela",
		KeyNoFrogSelected:    "Nenhum sapo selecionado",
		KeyErrorPlayingCall:  "Não foi possível tocar o canto",
	}
}
