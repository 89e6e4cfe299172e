// Package ui builds the WallCrop window: the crop canvas, the button bar and
// the preferences window.
package ui

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/WallCrop/config"
	"github.com/dixieflatline76/WallCrop/pkg/cropper"
	"github.com/dixieflatline76/WallCrop/util/log"
)

// ControllerFactory builds a crop session for an input folder. display
// reports the screen size in canvas units.
type ControllerFactory func(inputDir string, display cropper.Display) (*cropper.Controller, error)

// CropApp is the main window and the handlers that drive a Controller.
type CropApp struct {
	app           fyne.App
	win           fyne.Window
	cfg           *config.AppConfig
	display       cropper.Display
	newController ControllerFactory
	ctrl          *cropper.Controller

	canvas        *cropCanvas
	scroll        *container.Scroll
	status        *widget.Label
	okButton      *widget.Button
	suggestButton *widget.Button
	cropButton    *widget.Button
}

// NewCropApp creates the main window. display reports the screen size in
// physical pixels. Nothing is shown until Run is called.
func NewCropApp(a fyne.App, cfg *config.AppConfig, display cropper.Display, newController ControllerFactory) *CropApp {
	ca := &CropApp{
		app:           a,
		cfg:           cfg,
		newController: newController,
	}
	ca.win = a.NewWindow(config.AppName)
	ca.display = scaledDisplay{base: display, scale: ca.win.Canvas().Scale}
	ca.canvas = newCropCanvas(ca)
	ca.scroll = container.NewScroll(ca.canvas)
	ca.status = createStatusLabel()

	ca.okButton = widget.NewButton(okLabel, ca.skip)
	ca.suggestButton = widget.NewButton(suggestLabel, ca.suggest)
	ca.cropButton = widget.NewButton(cropLabel, ca.crop)
	ca.cropButton.Importance = widget.HighImportance

	bar := newButtonBar(ca.okButton, ca.status, ca.suggestButton, ca.cropButton)
	ca.win.SetContent(container.NewBorder(nil, container.NewPadded(bar), nil, nil, ca.scroll))
	ca.win.SetMainMenu(ca.createMainMenu())
	ca.win.Canvas().SetOnTypedKey(ca.typedKey)
	ca.win.Resize(fyne.NewSize(windowWidth, windowHeight))
	ca.win.CenterOnScreen()
	ca.updateView()
	return ca
}

func (ca *CropApp) createMainMenu() *fyne.MainMenu {
	return fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Open Folder...", ca.ChooseFolder),
			fyne.NewMenuItem("Preferences...", ca.CreatePreferencesWindow),
		),
		fyne.NewMenu("Help",
			fyne.NewMenuItem("About", func() {
				dialog.ShowInformation("About "+config.AppName,
					fmt.Sprintf("%s version %s", config.AppName, config.AppVersion), ca.win)
			}),
		),
	)
}

// Window returns the main window.
func (ca *CropApp) Window() fyne.Window {
	return ca.win
}

// Run shows the window, opens inputDir (or asks for a folder when it is
// empty) and blocks until the app quits.
func (ca *CropApp) Run(inputDir string) {
	ca.win.Show()
	if inputDir == "" {
		ca.ChooseFolder()
	} else if err := ca.OpenFolder(inputDir); err != nil {
		ca.showError(err)
	}
	ca.app.Run()
}

// ChooseFolder asks the user for an input folder and opens it.
func (ca *CropApp) ChooseFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ca.showError(err)
			return
		}
		if uri == nil {
			return
		}
		if err := ca.OpenFolder(uri.Path()); err != nil {
			ca.showError(err)
		}
	}, ca.win)
}

// OpenFolder replaces the current session with one over dir.
func (ca *CropApp) OpenFolder(dir string) error {
	ctrl, err := ca.newController(dir, ca.display)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", dir, err)
	}
	ca.ctrl = ctrl
	ca.cfg.SetInputDir(dir)
	log.Printf("Opened folder: %s", dir)

	err = ctrl.Start(context.Background())
	ca.updateView()
	if err != nil && !errors.Is(err, cropper.ErrNoMoreImages) {
		return err
	}
	return nil
}

func (ca *CropApp) skip() {
	if ca.ctrl == nil {
		return
	}
	ca.handle(ca.ctrl.Skip(context.Background()))
}

func (ca *CropApp) crop() {
	if ca.ctrl == nil {
		return
	}
	path, err := ca.ctrl.Crop(context.Background())
	if path != "" {
		log.Debugf("Crop written to %s", path)
	}
	ca.handle(err)
}

func (ca *CropApp) suggest() {
	if ca.ctrl == nil {
		return
	}
	ca.handle(ca.ctrl.Suggest(context.Background()))
}

func (ca *CropApp) typedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		ca.crop()
	}
}

// handle refreshes the view after an operation and reports unexpected errors.
func (ca *CropApp) handle(err error) {
	ca.updateView()
	if err != nil && !errors.Is(err, cropper.ErrNoMoreImages) {
		ca.showError(err)
	}
}

func (ca *CropApp) showError(err error) {
	log.Printf("Error: %v", err)
	dialog.ShowError(err, ca.win)
}

func (ca *CropApp) updateView() {
	if ca.ctrl == nil {
		ca.canvas.SetImage(nil)
		ca.status.SetText(statusNoFolder)
		ca.setButtonsEnabled(false)
		return
	}

	ca.canvas.SetImage(ca.ctrl.DisplayImage())
	ca.scroll.Refresh()

	position, total := ca.ctrl.Progress()
	ca.status.SetText(statusText(ca.ctrl.Session().Name, position, total))
	ca.setButtonsEnabled(!ca.ctrl.Exhausted())
	if ca.ctrl.Suggester() == nil {
		ca.suggestButton.Disable()
	}
}

func (ca *CropApp) setButtonsEnabled(enabled bool) {
	for _, b := range []*widget.Button{ca.okButton, ca.suggestButton, ca.cropButton} {
		if enabled {
			b.Enable()
		} else {
			b.Disable()
		}
	}
}

// BeginDrag forwards a press to the current session.
func (ca *CropApp) BeginDrag(p cropper.Point) {
	if ca.ctrl != nil {
		ca.ctrl.BeginDrag(p)
	}
}

// UpdateDrag forwards pointer motion to the current session.
func (ca *CropApp) UpdateDrag(p cropper.Point) {
	if ca.ctrl != nil {
		ca.ctrl.UpdateDrag(p)
	}
}

// EndDrag forwards a release to the current session.
func (ca *CropApp) EndDrag() {
	if ca.ctrl != nil {
		ca.ctrl.EndDrag()
	}
}

// Session returns the current session, or an empty one before a folder is open.
func (ca *CropApp) Session() cropper.Session {
	if ca.ctrl == nil {
		return cropper.Session{}
	}
	return ca.ctrl.Session()
}
