package signal_test

import (
	"fmt"

	"github.com/go-drift/signals/pkg/signal"
)

// Button is a receiver: it embeds Connectable and exposes handler methods.
type Button struct {
	signal.Connectable
	Label string
}

func (b *Button) HandlePress(signal.Void) {
	fmt.Println(b.Label, "pressed")
}

// This example shows the full connect/emit/teardown cycle.
func ExampleConnect() {
	var onClick signal.Signal[signal.Void]

	button := &Button{Label: "OK"}
	signal.Connect(&onClick, button, (*Button).HandlePress)

	// Dispatch reaches the handler once per connection.
	onClick.Emit(signal.Void{})

	// Tearing down the receiver detaches it from every signal.
	button.Dispose()
	onClick.Emit(signal.Void{})
	fmt.Println("connections:", onClick.ConnectionCount())

	// Output:
	// OK pressed
	// connections: 0
}

// This example shows how Duplicate mirrors connections onto a copied
// receiver.
func ExampleDuplicate() {
	var onClick signal.Signal[signal.Void]

	ok := &Button{Label: "OK"}
	signal.Connect(&onClick, ok, (*Button).HandlePress)

	cancel := *ok
	cancel.Label = "Cancel"
	signal.Duplicate(ok, &cancel)

	onClick.Emit(signal.Void{})

	// Output:
	// OK pressed
	// Cancel pressed
}

// This example shows that cloning a signal copies its subscriber list.
func ExampleSignal_Clone() {
	onSave := signal.New[string]()

	log := &Button{Label: "log"}
	signal.Connect(onSave, log, func(b *Button, path string) {
		fmt.Println(b.Label+":", "saved", path)
	})

	backup := onSave.Clone()
	onSave.Dispose()

	// The clone keeps dispatching after the original is gone.
	backup.Emit("notes.txt")

	// Output:
	// log: saved notes.txt
}
