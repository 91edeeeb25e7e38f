package cliargs

type ConsumerOpt func(*Consumer)

// Attaches usage to every error the Consumer returns.
func WithUsage(u Usage) ConsumerOpt {
	return func(c *Consumer) {
		c.usage = &u
	}
}

type RenderOpt func(*Renderer)

// Sets the total line length descriptions are wrapped to.
func LineWidth(n int) RenderOpt {
	return func(r *Renderer) {
		r.lineWidth = n
	}
}

// Sets the gap between the name column and descriptions, and the indent of alternative USAGE
// forms.
func TabWidth(n int) RenderOpt {
	return func(r *Renderer) {
		r.tabWidth = n
	}
}
