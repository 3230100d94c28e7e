package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/helixo/pinchlink/internal/app"
	"github.com/helixo/pinchlink/internal/capture"
	"github.com/helixo/pinchlink/internal/detector"
	"github.com/helixo/pinchlink/internal/gesture"
	"github.com/helixo/pinchlink/internal/link"
	"github.com/helixo/pinchlink/internal/store"
)

type options struct {
	cameraID    int
	baud        int
	fingerA     string
	fingerB     string
	minDistance float64
	maxDistance float64
	headless    bool
}

func main() {
	fmt.Println("pinchlink - hand gesture serial control")

	var opts options
	flag.IntVar(&opts.cameraID, "camera", 0, "camera device ID")
	flag.IntVar(&opts.baud, "baud", link.DefaultBaudRate, "serial baud rate")
	flag.StringVar(&opts.fingerA, "finger-a", "thumb", "first tracked finger")
	flag.StringVar(&opts.fingerB, "finger-b", "index", "second tracked finger")
	flag.Float64Var(&opts.minDistance, "min-distance", gesture.DefaultMinDistance, "fingertip distance in pixels mapped to level 0")
	flag.Float64Var(&opts.maxDistance, "max-distance", gesture.DefaultMaxDistance, "fingertip distance in pixels mapped to level 5")
	flag.BoolVar(&opts.headless, "headless", false, "run without a display window")
	flag.Parse()

	// All resource teardown happens through defers inside run, so a fatal
	// outcome here never skips a release.
	if err := run(opts); err != nil {
		log.Fatalf("pinchlink: %v", err)
	}
}

func run(opts options) error {
	fingerA, err := gesture.ParseFinger(opts.fingerA)
	if err != nil {
		return err
	}
	fingerB, err := gesture.ParseFinger(opts.fingerB)
	if err != nil {
		return err
	}
	if fingerA == fingerB {
		return fmt.Errorf("tracked fingers must differ, got %s twice", fingerA)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	settings := st.Settings()

	sessionID := uuid.NewString()
	log.Printf("Session %s", sessionID)
	if err := settings.RecordRun(sessionID); err != nil {
		log.Printf("Failed to record run: %v", err)
	}
	if err := settings.SetFingerPair(fingerA.String(), fingerB.String()); err != nil {
		log.Printf("Failed to save finger pair: %v", err)
	}

	portName, err := choosePort(settings)
	if err != nil {
		return err
	}

	fmt.Printf("Using port: %s\n", portName)
	serialLink, err := link.Open(portName, opts.baud)
	if err != nil {
		return err
	}
	defer serialLink.Close()

	if err := settings.SetLastPort(portName); err != nil {
		log.Printf("Failed to save port: %v", err)
	}

	var det detector.Detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		det = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		det = detector.NewMockDetector()
	}
	defer det.Close()

	var display app.Display = app.NopDisplay{}
	if !opts.headless {
		display = app.NewWindow("pinchlink")
	}
	defer display.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(app.Config{
		Camera:      capture.NewCamera(opts.cameraID),
		Detector:    det,
		Link:        serialLink,
		Display:     display,
		FingerA:     fingerA,
		FingerB:     fingerB,
		MinDistance: opts.minDistance,
		MaxDistance: opts.maxDistance,
	})

	return application.Run(ctx)
}

// choosePort lists the available ports, prompts the operator, and resolves
// the answer. An empty answer reuses the port from the previous run when one
// was recorded.
func choosePort(settings *store.SettingsRepository) (string, error) {
	ports, err := link.ListPorts()
	if err != nil {
		return "", err
	}
	if len(ports) == 0 {
		return "", fmt.Errorf("no serial ports found")
	}

	fmt.Println("Available ports:")
	for _, p := range ports {
		fmt.Printf("- %s\n", p)
	}

	lastPort, lastErr := settings.LastPort()
	if lastErr == nil {
		fmt.Printf("Select port (Enter for %s): ", lastPort)
	} else {
		fmt.Print("Select port: ")
	}

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read port selection: %w", err)
	}
	input = strings.TrimSpace(input)

	if input == "" && lastErr == nil {
		return lastPort, nil
	}

	return link.SelectPort(input, ports)
}

// openStore opens the settings database under ~/.pinchlink.
func openStore() (*store.Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home directory: %w", err)
	}

	dbDir := filepath.Join(homeDir, ".pinchlink")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	return store.New(filepath.Join(dbDir, "pinchlink.db"))
}
