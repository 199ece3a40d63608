package karst

// Builder holds a fully constructed component whose loop is not yet running.
//
// Between Build and Launch the caller mounts the builder's root into its
// parent container; the artifact returned by that mount is handed to Launch.
type Builder[W, I, O, C any, M Component[W, I, O, C]] struct {
	model    M
	root     Root
	index    *Index
	inputTx  Sender[I]
	inputRx  *Receiver[I]
	outputTx Sender[O]
	outputRx *Receiver[O]
}

// Build constructs a component without starting it.
//
// The init function receives the component's identity and both senders, so
// the model can self-address input and emit outputs before the loop exists.
// Build performs no concurrent side effects and has no error path: a failed
// initialization is the model's own concern to represent.
func Build[W, I, O, C, P any, M Component[W, I, O, C]](
	init func(params P, index *Index, input Sender[I], output Sender[O]) M,
	params P,
	index *Index,
) *Builder[W, I, O, C, M] {
	// Carries every event processed by this component's loop.
	inputTx, inputRx := NewChannel[I]()

	// Carries events this component emits for handling by its caller.
	outputTx, outputRx := NewChannel[O]()

	model := init(params, index, inputTx, outputTx)
	root := model.InitRoot()

	return &Builder[W, I, O, C, M]{
		model:    model,
		root:     root,
		index:    index,
		inputTx:  inputTx,
		inputRx:  inputRx,
		outputTx: outputTx,
		outputRx: outputRx,
	}
}

// Model returns the component's model.
func (b *Builder[W, I, O, C, M]) Model() M {
	return b.model
}

// Root returns the root view artifact, for mounting into a parent container
// before Launch.
func (b *Builder[W, I, O, C, M]) Root() Root {
	return b.root
}
