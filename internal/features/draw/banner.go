package draw

import (
	"fmt"
	"io"
)

const banner = `
╔══════════════════════════════════════════════════════════════╗
║                  🎨 AI Plotting Tool Demo 🎨                 ║
║                     Go gg Chart Generator                    ║
╚══════════════════════════════════════════════════════════════╝
    `

func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, banner)
}
