package game

// Director plays the game in place of a person
type Director interface {
	/**
	 * Initialize the director, once the board has been filled
	 */
	Init(*Board)

	/**
	 * Perform a single click. Returns false when there was nothing to do.
	 */
	Act() bool

	/**
	 * Stop acting; called when the game ends
	 */
	End()
}
