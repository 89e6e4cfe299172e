package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/validation"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/WallCrop/config"
)

// sizeRegexp accepts a positive pixel count.
const sizeRegexp = `^[1-9][0-9]{0,4}$`

// preferencesForm holds the widgets of the preferences window.
type preferencesForm struct {
	cfg *config.AppConfig

	widthEntry   *widget.Entry
	heightEntry  *widget.Entry
	qualitySlide *widget.Slider
	qualityLabel *widget.Label
	autoSuggest  *widget.Check
	cascadeEntry *widget.Entry
	outputEntry  *widget.Entry
	applyButton  *widget.Button
	statusLabel  *widget.Label
}

func newPreferencesForm(cfg *config.AppConfig) *preferencesForm {
	pf := &preferencesForm{cfg: cfg}

	w, h := cfg.GetCropSize()
	pf.widthEntry = widget.NewEntry()
	pf.widthEntry.SetText(strconv.Itoa(w))
	pf.widthEntry.Validator = validation.NewRegexp(sizeRegexp, "Width must be a positive number")
	pf.heightEntry = widget.NewEntry()
	pf.heightEntry.SetText(strconv.Itoa(h))
	pf.heightEntry.Validator = validation.NewRegexp(sizeRegexp, "Height must be a positive number")

	pf.qualityLabel = widget.NewLabel("")
	pf.qualitySlide = widget.NewSlider(1, 100)
	pf.qualitySlide.Step = 1
	pf.qualitySlide.SetValue(float64(cfg.GetJPEGQuality()))
	pf.qualityLabel.SetText(strconv.Itoa(cfg.GetJPEGQuality()))

	pf.autoSuggest = widget.NewCheck("Place the crop box automatically", nil)
	pf.autoSuggest.SetChecked(cfg.GetAutoSuggest())

	pf.cascadeEntry = widget.NewEntry()
	pf.cascadeEntry.SetPlaceHolder("Path to a pigo face cascade (optional)")
	pf.cascadeEntry.SetText(cfg.GetFaceCascadePath())

	pf.outputEntry = widget.NewEntry()
	pf.outputEntry.SetPlaceHolder(fmt.Sprintf("<input folder>/%s", config.DefaultOutputSubDir))
	pf.outputEntry.SetText(cfg.GetOutputDir())

	pf.statusLabel = widget.NewLabel("")
	pf.applyButton = widget.NewButton("Apply Changes", pf.apply)
	pf.applyButton.Disable()

	changed := func(string) { pf.checkAndEnableApply() }
	pf.widthEntry.OnChanged = changed
	pf.heightEntry.OnChanged = changed
	pf.cascadeEntry.OnChanged = changed
	pf.outputEntry.OnChanged = changed
	pf.qualitySlide.OnChanged = func(v float64) {
		pf.qualityLabel.SetText(strconv.Itoa(int(v)))
		pf.checkAndEnableApply()
	}
	pf.autoSuggest.OnChanged = func(bool) { pf.checkAndEnableApply() }
	return pf
}

// dirty reports whether any widget differs from the stored preferences.
func (pf *preferencesForm) dirty() bool {
	w, h := pf.cfg.GetCropSize()
	return pf.widthEntry.Text != strconv.Itoa(w) ||
		pf.heightEntry.Text != strconv.Itoa(h) ||
		int(pf.qualitySlide.Value) != pf.cfg.GetJPEGQuality() ||
		pf.autoSuggest.Checked != pf.cfg.GetAutoSuggest() ||
		pf.cascadeEntry.Text != pf.cfg.GetFaceCascadePath() ||
		pf.outputEntry.Text != pf.cfg.GetOutputDir()
}

func (pf *preferencesForm) validate() error {
	if err := pf.widthEntry.Validate(); err != nil {
		return err
	}
	return pf.heightEntry.Validate()
}

func (pf *preferencesForm) checkAndEnableApply() {
	if err := pf.validate(); err != nil {
		pf.statusLabel.SetText(err.Error())
		pf.statusLabel.Importance = widget.DangerImportance
		pf.applyButton.Disable()
		pf.statusLabel.Refresh()
		return
	}
	pf.statusLabel.SetText("")
	pf.statusLabel.Importance = widget.MediumImportance
	pf.statusLabel.Refresh()
	if pf.dirty() {
		pf.applyButton.Enable()
	} else {
		pf.applyButton.Disable()
	}
}

func (pf *preferencesForm) apply() {
	if err := pf.validate(); err != nil {
		return
	}
	w, _ := strconv.Atoi(pf.widthEntry.Text)
	h, _ := strconv.Atoi(pf.heightEntry.Text)
	pf.cfg.SetCropSize(w, h)
	pf.cfg.SetJPEGQuality(int(pf.qualitySlide.Value))
	pf.cfg.SetAutoSuggest(pf.autoSuggest.Checked)
	pf.cfg.SetFaceCascadePath(pf.cascadeEntry.Text)
	pf.cfg.SetOutputDir(pf.outputEntry.Text)

	pf.applyButton.Disable()
	pf.statusLabel.SetText("Saved. Changes apply to the next folder you open.")
	pf.statusLabel.Importance = widget.SuccessImportance
	pf.statusLabel.Refresh()
}

func (pf *preferencesForm) content(parent fyne.Window) fyne.CanvasObject {
	browse := widget.NewButton("Browse...", func() {
		dialog.ShowFileOpen(func(r fyne.URIReadCloser, err error) {
			if err != nil || r == nil {
				return
			}
			defer r.Close()
			pf.cascadeEntry.SetText(r.URI().Path())
		}, parent)
	})

	c := container.NewVBox()
	c.Add(createSectionTitleLabel("Crop"))
	c.Add(createSettingDescriptionLabel("The crop box has a fixed size in original image pixels. Images smaller than the box are skipped."))
	c.Add(widget.NewForm(
		widget.NewFormItem("Width", pf.widthEntry),
		widget.NewFormItem("Height", pf.heightEntry),
		widget.NewFormItem("JPEG quality", container.NewBorder(nil, nil, nil, pf.qualityLabel, pf.qualitySlide)),
		widget.NewFormItem("Output folder", pf.outputEntry),
	))
	c.Add(widget.NewSeparator())
	c.Add(createSectionTitleLabel("Suggestions"))
	c.Add(createSettingDescriptionLabel("Suggest centers the box on the most interesting region, or on a face when a cascade file is set."))
	c.Add(pf.autoSuggest)
	c.Add(container.NewBorder(nil, nil, nil, browse, pf.cascadeEntry))
	c.Add(widget.NewSeparator())
	c.Add(pf.statusLabel)
	return c
}

// CreatePreferencesWindow opens a window for editing the stored preferences.
func (ca *CropApp) CreatePreferencesWindow() {
	prefsWindow := ca.app.NewWindow(fmt.Sprintf("%s Preferences", config.AppName))
	prefsWindow.Resize(fyne.NewSize(640, 520))
	prefsWindow.CenterOnScreen()

	pf := newPreferencesForm(ca.cfg)
	closeButton := widget.NewButton("Close", func() {
		prefsWindow.Close()
	})
	footer := container.NewHBox(pf.applyButton, layout.NewSpacer(), closeButton)
	prefsWindow.SetContent(container.NewBorder(nil, footer, nil, nil, container.NewVScroll(pf.content(prefsWindow))))
	prefsWindow.Show()
}
