package gesturedeck

import (
	"time"

	"github.com/chriskillpack/gesturedeck/internal/gesture"
	"github.com/chriskillpack/gesturedeck/internal/widget"
)

// Orchestrator owns the camera, drives the gesture classifier from the
// landmark subsystem's latest result, dispatches widget updates, and
// renders the overlay. It runs entirely on the control/video executor;
// the audio path lives in Mixer and never touches this struct.
type Orchestrator struct {
	Camera    Camera
	Display   Display
	Landmarks LandmarkSource
	HUD       widget.Surface // may be nil; overlay drawing is then skipped
	Mixer     *Mixer         // may be nil; included so Stop can order teardown

	Widgets []widget.Widget

	FrameWidth, FrameHeight int

	left, right *gesture.Hand
	startTime   time.Time
}

// NewOrchestrator wires the external collaborators and the widget set for
// one run. frameWidth/frameHeight must match the camera's fixed
// resolution.
func NewOrchestrator(cam Camera, disp Display, lm LandmarkSource, hud widget.Surface, widgets []widget.Widget, frameWidth, frameHeight int) *Orchestrator {
	return &Orchestrator{
		Camera:      cam,
		Display:     disp,
		Landmarks:   lm,
		HUD:         hud,
		Widgets:     widgets,
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
		left:        gesture.NewHand(),
		right:       gesture.NewHand(),
	}
}

// Run executes the frame loop until the display reports 'q' or stop is
// closed. It always tears down in control-thread-first order before
// returning: stop the loop, stop the audio stream, close the landmark
// subsystem, release the camera.
func (o *Orchestrator) Run(stop <-chan struct{}) error {
	o.startTime = time.Now()
	defer o.shutdown()

	for {
		select {
		case <-stop:
			return nil
		default:
		}

		img, ok := o.Camera.ReadFrame()
		if !ok {
			// Empty frame: skip this iteration, not an error.
			continue
		}

		ts := time.Since(o.startTime).Milliseconds()
		if err := o.Landmarks.Submit(bgrToRGB(img), ts); err != nil {
			continue
		}

		lf, _ := o.Landmarks.Latest()
		o.dispatch(lf)

		if o.HUD != nil {
			for _, w := range o.Widgets {
				w.Draw(o.HUD)
			}
		}
		o.Display.Show(img)

		if o.Display.PollKey() == 'q' {
			return nil
		}
	}
}

// dispatch classifies the gesture for each tracked hand and fans the
// result out to every widget, mirroring the hit-test point into display
// space before it reaches a widget's Contains/Update.
func (o *Orchestrator) dispatch(lf LandmarkFrame) {
	o.dispatchHand(widget.HandID(HandLeft), o.left, findHand(lf, HandLeft))
	o.dispatchHand(widget.HandID(HandRight), o.right, findHand(lf, HandRight))
}

func (o *Orchestrator) dispatchHand(id widget.HandID, h *gesture.Hand, hr *HandResult) {
	var result gesture.Result
	if hr == nil {
		result = h.Classify(gesture.Input{}, false)
	} else {
		in := gesture.Input{
			Thumb:  scalePoint(hr.Landmarks[4], o.FrameWidth, o.FrameHeight),
			Index:  scalePoint(hr.Landmarks[8], o.FrameWidth, o.FrameHeight),
			Middle: scalePoint(hr.Landmarks[12], o.FrameWidth, o.FrameHeight),
		}
		result = h.Classify(in, true)
	}

	var pt gesture.Point
	switch result.State {
	case gesture.Pinch:
		pt = mirrorPoint(result.PinchPoint, o.FrameWidth)
	case gesture.Grab:
		pt = mirrorPoint(result.GrabPoint, o.FrameWidth)
	}

	for _, w := range o.Widgets {
		w.Update(id, result.State, pt)
	}
}

func (o *Orchestrator) shutdown() {
	if o.Mixer != nil {
		o.Mixer.Stop()
	}
	if o.Landmarks != nil {
		o.Landmarks.Close()
	}
	if o.Camera != nil {
		o.Camera.Close()
	}
}

func findHand(lf LandmarkFrame, label HandLabel) *HandResult {
	for i := range lf.Hands {
		if lf.Hands[i].Handedness == label {
			return &lf.Hands[i]
		}
	}
	return nil
}

func scalePoint(lm Landmark, width, height int) gesture.Point {
	return gesture.Point{X: lm.X * float64(width), Y: lm.Y * float64(height)}
}

func mirrorPoint(p gesture.Point, width int) gesture.Point {
	return gesture.Point{X: gesture.MirrorX(p.X, width), Y: p.Y}
}

// bgrToRGB converts a tightly packed BGR image to tightly packed RGB, which
// is what the landmark subsystem interface expects.
func bgrToRGB(img Image) []byte {
	out := make([]byte, len(img.Pix))
	for i := 0; i+2 < len(img.Pix); i += 3 {
		out[i] = img.Pix[i+2]
		out[i+1] = img.Pix[i+1]
		out[i+2] = img.Pix[i]
	}
	return out
}
