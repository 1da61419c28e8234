package scanners

const globalModeSnippet = `
# Add this at the top of your render function:
global_mode = st.session_state.get('mode', 'Demo')

# Replace local toggle with mode indicator:
if global_mode == 'Demo':
    st.info("🎯 **Mode:** Demo Mode - Using sample data")
else:
    st.success("🔴 **Mode:** Real AWS Account - Showing actual data")
st.caption("Change mode in sidebar →")
`

const conditionalSnippet = `
# Replace all view_mode checks with:
if st.session_state.get('mode', 'Demo') == 'Demo':
    # Demo mode code
else:
    # Real mode code
`

const helperSnippet = `
# Add helper function to your module:
def is_demo_mode():
    """Check if currently in demo mode"""
    return st.session_state.get('mode', 'Demo') == 'Demo'

def is_live_mode():
    """Check if currently in live mode"""
    return st.session_state.get('mode', 'Demo') == 'Live'
`

// FixSnippets returns boilerplate for a human to paste into an affected
// module. The content is static and does not depend on scan results.
func (s *DemoModeScanner) FixSnippets() []string {
	return FixSnippets()
}

func FixSnippets() []string {
	return []string{globalModeSnippet, conditionalSnippet, helperSnippet}
}
