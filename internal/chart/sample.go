package chart

// sampleChart is the reference organisation used by the demo command and as
// a fallback when no chart file is configured.
const sampleChart = `name: Company
units:
  - name: CEO
    value: 100000
  - name: IT
    units:
      - name: Dev1
        value: 60000
      - name: Dev2
        value: 60000
      - name: CTO
        value: 80000
`

// Sample returns a fresh copy of the reference chart. Its total is 300000.
func Sample() *Chart {
	c, err := Parse([]byte(sampleChart))
	if err != nil {
		panic("chart: invalid sample chart: " + err.Error())
	}
	c.Source = "(sample)"
	return c
}
