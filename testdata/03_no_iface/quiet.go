package quiet

type Mime struct{}

func (Mime) Perform() {}
