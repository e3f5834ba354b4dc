// Package capture implements the photo capture workflow.
//
// A Workflow starts in Framing. Capturing a photo moves it to Annotating,
// where the attribute form can be filled in directly or through the
// country and type pickers. Commit hands the draft to a Creator and
// returns to Framing; Discard drops the photo and returns to Framing
// without creating anything.
//
//	Framing --Capture--> Annotating --Commit--> Framing
//	                     Annotating --Discard-> Framing
//	                     Annotating <-> PickingCountry | PickingType
package capture
