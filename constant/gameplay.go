package constant

// Court dimensions in logical pixels
const (
	ScreenWidth  = 200
	ScreenHeight = 400
)

// Ball
const (
	// BallRadius is also the side of the collision box (box is centered on the ball)
	BallRadius = 8
	BallSpeed  = 8
)

// Bat
const (
	BatWidth  = 40
	BatHeight = 8
	BatSpeed  = 4

	// BatHomeOffset is the distance of each bat's home row from its goal line
	BatHomeOffset = 30
)

// AIAttentionFraction is the share of the court, measured from the AI goal line,
// in which the AI bat chases the ball
const AIAttentionFraction = 0.75
