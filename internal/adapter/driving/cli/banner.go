package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/rcardoso/beneficio-ofx-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$$                                /$$$$$$  /$$$$$$$$ /$$   /$$
        | $$__  $$                              /$$__  $$| $$_____/| $$  / $$
        | $$  \ $$  /$$$$$$  /$$$$$$$  /$$$$$$ | $$  \ $$| $$      |  $$/ $$/
        | $$$$$$$  /$$__  $$| $$__  $$/$$__  $$| $$  | $$| $$$$$    \  $$$$/
        | $$__  $$| $$$$$$$$| $$  \ $$| $$$$$$$$| $$  | $$| $$__/    >$$  $$
        | $$  \ $$| $$_____/| $$  | $$| $$_____/| $$  | $$| $$      /$$/\  $$
        | $$$$$$$/|  $$$$$$$| $$  | $$|  $$$$$$$|  $$$$$$/| $$     | $$  \ $$
        |_______/  \_______/|__/  |__/ \_______/ \______/ |__/     |__/  |__/
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Beneficio OFX CLI (v%s)", formattedVersion)))
}
