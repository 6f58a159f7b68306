package tailwind

// unsupportedClasses are exact utility names with no email-safe rendering.
var unsupportedClasses = setOf(
	// flex layout
	"flex",
	"inline-flex",
	"flex-row",
	"flex-row-reverse",
	"flex-col",
	"flex-col-reverse",
	"flex-wrap",
	"flex-wrap-reverse",
	"flex-nowrap",
	"flex-1",
	"flex-auto",
	"flex-initial",
	"flex-none",
	"grow",
	"grow-0",
	"shrink",
	"shrink-0",
	"justify-start",
	"justify-end",
	"justify-center",
	"justify-between",
	"justify-around",
	"justify-evenly",
	"justify-stretch",
	"items-start",
	"items-end",
	"items-center",
	"items-baseline",
	"items-stretch",
	"self-auto",
	"self-start",
	"self-end",
	"self-center",
	"self-stretch",
	"self-baseline",
	"content-start",
	"content-end",
	"content-center",
	"content-between",
	"content-around",
	"content-evenly",
	"content-stretch",
	// grid and exotic display
	"grid",
	"inline-grid",
	"contents",
	"flow-root",
	// gaps
	"gap-0",
	"gap-1",
	"gap-2",
	"gap-3",
	"gap-4",
	"gap-5",
	"gap-6",
	"gap-7",
	"gap-8",
	"gap-9",
	"gap-10",
	"gap-11",
	"gap-12",
	// transforms
	"transform",
	"transform-gpu",
	"transform-none",
	// motion
	"transition",
	"transition-all",
	"transition-colors",
	"transition-opacity",
	"transition-shadow",
	"transition-transform",
	"duration-75",
	"duration-100",
	"duration-150",
	"duration-200",
	"duration-300",
	"duration-500",
	"duration-700",
	"duration-1000",
	"ease-linear",
	"ease-in",
	"ease-out",
	"ease-in-out",
	"animate-none",
	"animate-spin",
	"animate-ping",
	"animate-pulse",
	"animate-bounce",
	// backdrop filters
	"backdrop-blur",
	"backdrop-brightness",
	"backdrop-contrast",
	"backdrop-grayscale",
	"backdrop-hue-rotate",
	"backdrop-invert",
	"backdrop-opacity",
	"backdrop-saturate",
	"backdrop-sepia",
	// filters
	"blur",
	"blur-sm",
	"blur-md",
	"blur-lg",
	"blur-xl",
	"blur-2xl",
	"blur-3xl",
	"brightness-0",
	"brightness-50",
	"brightness-75",
	"brightness-90",
	"brightness-95",
	"brightness-100",
	"brightness-105",
	"brightness-110",
	"brightness-125",
	"brightness-150",
	"brightness-200",
	"contrast-0",
	"contrast-50",
	"contrast-75",
	"contrast-100",
	"contrast-125",
	"contrast-150",
	"contrast-200",
	"grayscale",
	"grayscale-0",
	"hue-rotate-0",
	"hue-rotate-15",
	"hue-rotate-30",
	"hue-rotate-60",
	"hue-rotate-90",
	"hue-rotate-180",
	"invert",
	"invert-0",
	"saturate-0",
	"saturate-50",
	"saturate-100",
	"saturate-150",
	"saturate-200",
	"sepia",
	"sepia-0",
	"drop-shadow",
	"drop-shadow-sm",
	"drop-shadow-md",
	"drop-shadow-lg",
	"drop-shadow-xl",
	"drop-shadow-2xl",
	"drop-shadow-none",
	// accessibility helpers
	"sr-only",
	"not-sr-only",
	// scrolling
	"scroll-auto",
	"scroll-smooth",
	"scroll-m-0",
	"scroll-m-1",
	"scroll-p-0",
	"scroll-p-1",
	"snap-start",
	"snap-end",
	"snap-center",
	"snap-align-none",
	"snap-normal",
	"snap-always",
	"snap-mandatory",
	"snap-proximity",
	"snap-none",
	"snap-x",
	"snap-y",
	"snap-both",
	// touch
	"touch-auto",
	"touch-none",
	"touch-pan-x",
	"touch-pan-left",
	"touch-pan-right",
	"touch-pan-y",
	"touch-pan-up",
	"touch-pan-down",
	"touch-pinch-zoom",
	"touch-manipulation",
	// selection
	"select-none",
	"select-text",
	"select-all",
	"select-auto",
	// resize
	"resize-none",
	"resize-y",
	"resize-x",
	"resize",
	// will-change
	"will-change-auto",
	"will-change-scroll",
	"will-change-contents",
	"will-change-transform",
	// container
	"container",
	// aspect ratio
	"aspect-auto",
	"aspect-square",
	"aspect-video",
	// multi-column
	"columns-1",
	"columns-2",
	"columns-3",
	"columns-4",
	"columns-5",
	"columns-6",
	"columns-7",
	"columns-8",
	"columns-9",
	"columns-10",
	"columns-11",
	"columns-12",
	"columns-auto",
	"columns-3xs",
	"columns-2xs",
	"columns-xs",
	"columns-sm",
	"columns-md",
	"columns-lg",
	"columns-xl",
	"columns-2xl",
	"columns-3xl",
	"columns-4xl",
	"columns-5xl",
	"columns-6xl",
	"columns-7xl",
	// fragmentation
	"break-after-auto",
	"break-after-avoid",
	"break-after-all",
	"break-after-avoid-page",
	"break-after-page",
	"break-after-left",
	"break-after-right",
	"break-after-column",
	"break-before-auto",
	"break-before-avoid",
	"break-before-all",
	"break-before-avoid-page",
	"break-before-page",
	"break-before-left",
	"break-before-right",
	"break-before-column",
	"break-inside-auto",
	"break-inside-avoid",
	"break-inside-avoid-page",
	"break-inside-avoid-column",
	// box decoration
	"box-decoration-clone",
	"box-decoration-slice",
	// isolation
	"isolate",
	"isolation-auto",
	// blending
	"mix-blend-normal",
	"mix-blend-multiply",
	"mix-blend-screen",
	"mix-blend-overlay",
	"mix-blend-darken",
	"mix-blend-lighten",
	"mix-blend-color-dodge",
	"mix-blend-color-burn",
	"mix-blend-hard-light",
	"mix-blend-soft-light",
	"mix-blend-difference",
	"mix-blend-exclusion",
	"mix-blend-hue",
	"mix-blend-saturation",
	"mix-blend-color",
	"mix-blend-luminosity",
	"mix-blend-plus-darker",
	"mix-blend-plus-lighter",
	"bg-blend-normal",
	"bg-blend-multiply",
	"bg-blend-screen",
	"bg-blend-overlay",
	"bg-blend-darken",
	"bg-blend-lighten",
	"bg-blend-color-dodge",
	"bg-blend-color-burn",
	"bg-blend-hard-light",
	"bg-blend-soft-light",
	"bg-blend-difference",
	"bg-blend-exclusion",
	"bg-blend-hue",
	"bg-blend-saturation",
	"bg-blend-color",
	"bg-blend-luminosity",
	// background attachment, clip and origin
	"bg-fixed",
	"bg-local",
	"bg-scroll",
	"bg-clip-border",
	"bg-clip-padding",
	"bg-clip-content",
	"bg-clip-text",
	"bg-origin-border",
	"bg-origin-padding",
	"bg-origin-content",
	// pointer events
	"pointer-events-none",
	"pointer-events-auto",
	// grid placement
	"place-content-center",
	"place-content-start",
	"place-content-end",
	"place-content-between",
	"place-content-around",
	"place-content-evenly",
	"place-content-baseline",
	"place-content-stretch",
	"place-items-start",
	"place-items-end",
	"place-items-center",
	"place-items-baseline",
	"place-items-stretch",
	"place-self-auto",
	"place-self-start",
	"place-self-end",
	"place-self-center",
	"place-self-stretch",
	// ordering
	"order-1",
	"order-2",
	"order-3",
	"order-4",
	"order-5",
	"order-6",
	"order-7",
	"order-8",
	"order-9",
	"order-10",
	"order-11",
	"order-12",
	"order-first",
	"order-last",
	"order-none",
	// form controls
	"appearance-none",
	"appearance-auto",
	"accent-auto",
	"caret-inherit",
	"caret-current",
	"caret-transparent",
)

func setOf(items ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		out[item] = struct{}{}
	}
	return out
}
