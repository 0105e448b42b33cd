package stats

// balanceCatalog maps the five balance bands (by inclusive upper bound) to
// their preset message pools. One entry is drawn per recomputation, so the
// displayed message may change between recomputes of an identical task set
// while the balance number itself stays deterministic.
var balanceCatalog = []struct {
	max  int
	pool []Message
}{
	{20, []Message{
		{"Smooth Sailing", "A light day ahead. Room to breathe or get ahead."},
		{"Easy Pace", "Today's load is gentle. A good day to recharge."},
		{"Clear Skies", "Not much on your plate. Enjoy the slack."},
	}},
	{40, []Message{
		{"Steady Going", "A comfortable workload. Keep your rhythm."},
		{"In Balance", "Work and life are sitting in a healthy spot."},
		{"Warming Up", "A moderate day. Start with the important one."},
	}},
	{60, []Message{
		{"Full Plate", "A solid day of work. Pace yourself."},
		{"Head Down", "Enough to keep you busy end to end."},
		{"Keep Moving", "The list is real but manageable. One at a time."},
	}},
	{80, []Message{
		{"Heavy Load", "Today is packed. Guard your focus."},
		{"Crunch Mode", "A demanding day. Cut what can wait."},
		{"Deep Water", "High load. Take breaks on purpose."},
	}},
	{100, []Message{
		{"Overloaded", "More than a day's capacity. Consider moving something."},
		{"Red Zone", "Your day is past its limit. Reschedule or drop."},
		{"At The Edge", "This is too much for one day. Protect tomorrow."},
	}},
}

// PickBalanceMessage selects a message for the balance number's band,
// uniformly at random from the band's pool.
func PickBalanceMessage(balanceNum int, r Rand) Message {
	for _, band := range balanceCatalog {
		if balanceNum <= band.max {
			return band.pool[r.Intn(len(band.pool))]
		}
	}
	last := balanceCatalog[len(balanceCatalog)-1]
	return last.pool[r.Intn(len(last.pool))]
}

// DrawCenter samples fresh display coordinates in [0.2,0.8]x[0.2,0.8].
// Presentation layout only, never derived from the task set.
func DrawCenter(r Rand) [2]float64 {
	return [2]float64{r.Float64()*0.6 + 0.2, r.Float64()*0.6 + 0.2}
}
