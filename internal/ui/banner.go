package ui

import (
	"fmt"
)

// Version is the release version stamped into the banner and --version
// output. Overridable at link time.
var Version = "1.0.0"

const banner = `
╔═══════════════════════════════════════════════════════════╗
║                                                           ║
║     ████████╗██╗██████╗ ███████╗                          ║
║     ╚══██╔══╝██║██╔══██╗██╔════╝                          ║
║        ██║   ██║██║  ██║█████╗                            ║
║        ██║   ██║██║  ██║██╔══╝                            ║
║        ██║   ██║██████╔╝███████╗                          ║
║        ╚═╝   ╚═╝╚═════╝ ╚══════╝                          ║
║                                                           ║
║        🌊  Refresh your system with the update wave       ║
║                         v%-5s                             ║
╚═══════════════════════════════════════════════════════════╝`

// Banner prints the startup banner.
func (p *Printer) Banner() {
	p.line(p.paint(StyleBanner, fmt.Sprintf(banner, Version)))
}
