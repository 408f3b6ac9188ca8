package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"chart-demo/internal/charts"
)

// go run etc/tools/test_chart.go
// in etc/charts/<kind>.png
func main() {
	fmt.Println("Generating test charts...")

	chartsDir := filepath.Join("etc", "charts")
	if err := os.MkdirAll(chartsDir, 0755); err != nil {
		fmt.Printf("Error creating charts directory: %v\n", err)
		os.Exit(1)
	}

	for _, kind := range charts.Concrete() {
		fig, err := charts.Render(kind, kind.DefaultLabel(), charts.DefaultOptions())
		if err != nil {
			fmt.Printf("Error generating %s chart: %v\n", kind, err)
			os.Exit(1)
		}

		path := filepath.Join(chartsDir, kind.String()+".png")
		f, err := os.Create(path)
		if err != nil {
			fmt.Printf("Error creating %s: %v\n", path, err)
			os.Exit(1)
		}
		if err := png.Encode(f, fig.Image); err != nil {
			f.Close()
			fmt.Printf("Error encoding %s: %v\n", path, err)
			os.Exit(1)
		}
		f.Close()

		fmt.Printf("Chart generated successfully: %s\n", path)
	}

	fmt.Println("Open the files to see the result!")
}
