package repl

// Scenario is one built-in menu entry: a human label and the model
// text model.Parse reads to build it.
type Scenario struct {
	Label string
	Text  string
}

// Scenarios holds the menu's fixed entries 0..7, in the order the menu
// prints them. Each model text is grammar-valid input to model.Parse.
var Scenarios = []Scenario{
	0: {
		Label: "The first linear program",
		Text: `max 6x + 4y + z1 + z2
st
6x + 8y <= 12
10x + 5y <= 10
free: z1, z2
end
`,
	},
	1: {
		Label: "One optimal solution",
		Text: `max 6x + 4y
st
6x + 8y <= 12
10x + 5y <= 10
end
`,
	},
	2: {
		Label: "Multiple optimal solution",
		Text: `min 10/7x1 + 7/2x2 - 4x4 + x5
such that
2x2 - 1x3 + 3x4 + 2x5 = 10
2x1 - 4x4 + 3x5 = 12
-1x2 + 1x3 + 1x5 = 15
end
`,
	},
	3: {
		Label: "Infeasible constraint",
		Text: `max x
st
x <= -1
end
`,
	},
	4: {
		Label: "Infinite solution",
		Text: `max x + y
st
x - y <= 0
free: y
end
`,
	},
	5: {
		Label: "Cycling example (Beale)",
		Text: `max 3/4x1 - 150x2 + 1/50x3 - 6x4
st
1/4x1 - 60x2 - 1/25x3 + 9x4 <= 0
1/2x1 - 90x2 - 1/50x3 + 3x4 <= 0
end
`,
	},
	6: {
		Label: "Cycling example (Marshal and Suurballe)",
		Text: `min -.4x1 - .4x2 + 1.8x3
st
1) .6x1 - 6.4x2 + 4.8x3 <= 0
2) .2x1 - 1.8x2 + .6x3 <= 0
3) .4x1 - 1.6x2 + .2x3 <= 0
end
`,
	},
	7: {
		Label: "Branch and bound example",
		Text: `max 100x1 + 150x2
st
8000x1 + 4000x2 <= 40000
15x1 + 30x2 <= 200
int: x1, x2
end
`,
	},
}

// LoadLabel is the menu label for option 8: read a model from an
// external source (a file path or typed-in text) rather than a
// built-in scenario.
const LoadLabel = "Define a linear program"
