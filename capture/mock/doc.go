// Package mock provides test double implementations of the capture collaborators.
//
// The mocks allow the capture workflow to run without a device camera or
// an interactive picker, with controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Scripted photos
//	camera := mock.NewMockCamera("caps/1.jpg", "caps/2.jpg")
//
//	// Custom behavior injection
//	camera := mock.NewMockCamera().
//	    WithCaptureFunc(func(ctx context.Context) (string, error) {
//	        return "", errors.New("lens cap on")
//	    })
//
//	// Scripted choices; an empty choice dismisses the list
//	picker := mock.NewMockPicker("Poland", "")
//
// # Default Behavior
//
//   - MockCamera: returns the scripted references in order, then
//     generated ones of the form "mock://photo/N"
//   - MockPicker: returns the scripted choices in order, then the first option
package mock
