package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Alia5/keybd/keyboard"
	"github.com/Alia5/keybd/platform"
)

// Keys lists the canonical keys and the native code each one maps to.
type Keys struct {
	Platform string `help:"Platform whose native codes are shown: auto, linux, darwin or windows" default:"auto" env:"KEYBD_PLATFORM"`
}

// Run is called by Kong when the keys command is executed.
func (k *Keys) Run() error {
	return k.write(os.Stdout)
}

func (k *Keys) write(w io.Writer) error {
	p, err := platform.ParsePlatform(k.Platform)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "NAME\tVALUE\tNATIVE (%s)\n", p)
	for _, key := range keyboard.AllKeys() {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", key, uint16(key), nativeCode(p, key))
	}
	return tw.Flush()
}

func nativeCode(p platform.Platform, k keyboard.Key) string {
	switch p {
	case platform.Linux:
		return fmt.Sprintf("%d", uint16(k))
	case platform.Darwin:
		code, ok := platform.DarwinKeycode(k)
		if !ok {
			return "-"
		}
		return fmt.Sprintf("0x%02X", code)
	case platform.Windows:
		vk, scan, flags := platform.DecodeWindowsKey(uint16(k))
		return fmt.Sprintf("vk=0x%02X scan=0x%02X flags=0x%04X", vk, scan, flags)
	default:
		return "-"
	}
}
