package site

// pageTemplate is the Go html/template for each documentation page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.SiteName}}</title>
  <link rel="stylesheet" href="{{.RelRoot}}style.css?v={{.BuildID}}">
</head>
<body class="layout-docs" data-base-marker="{{.BasePath}}" data-index-file="{{.IndexFile}}" data-max-results="{{.MaxResults}}">
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <a href="{{.RelRoot}}index.html" class="site-title">{{.SiteName}}</a>
      <button type="button" class="close-sidebar" aria-label="Close navigation">&times;</button>
      <div class="search">
        <input type="search" id="search-input" placeholder="Search docs..." autocomplete="off">
        <div class="search-results" id="search-results"></div>
      </div>
    </div>
    <div class="sidebar-tree" id="sidebar-tree">
      {{.TreeHTML}}
    </div>
  </nav>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  <main class="content">
    <div class="top-bar">
      <button type="button" class="mobile-menu-toggle" aria-label="Open navigation">&#9776;</button>
    </div>
    <article class="docs-content page-content">
      {{.Content}}
    </article>
  </main>
  {{if .TOC}}<aside class="toc">
    <h4>On this page</h4>
    <nav id="toc-nav"><ul>
      {{range .TOC}}<li class="h{{.Level}}"><a href="#{{.ID}}">{{.Title}}</a></li>
      {{end}}
    </ul></nav>
  </aside>{{end}}
  <script src="{{.RelRoot}}script.js?v={{.BuildID}}"></script>
</body>
</html>`

// cssContent is the stylesheet for the documentation site.
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #1f2328;
  --muted: #656d76;
  --border: #d0d7de;
  --accent: #2563eb;
  --mark: rgba(96, 165, 250, 0.3);
  --sidebar-width: 280px;
}
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, sans-serif; color: var(--fg); background: var(--bg); }
.sidebar { position: fixed; top: 0; bottom: 0; left: 0; width: var(--sidebar-width); overflow-y: auto; border-right: 1px solid var(--border); padding: 1rem; background: var(--bg); }
.site-title { font-weight: 600; color: var(--fg); text-decoration: none; }
.close-sidebar, .mobile-menu-toggle { display: none; background: none; border: 0; font-size: 1.5rem; cursor: pointer; }
.search { position: relative; margin-top: 1rem; }
#search-input { width: 100%; padding: 0.5rem; border: 1px solid var(--border); border-radius: 6px; }
.search-results { display: none; position: absolute; left: 0; right: 0; z-index: 10; background: var(--bg); border: 1px solid var(--border); border-radius: 6px; box-shadow: 0 8px 24px rgba(0,0,0,0.12); }
.search-results.visible { display: block; }
.search-item { display: block; padding: 0.5rem 0.75rem; color: var(--fg); text-decoration: none; border-bottom: 1px solid var(--border); }
.search-item:last-child { border-bottom: 0; }
.search-item-empty { cursor: default; }
.search-item-title { font-weight: 600; }
.search-item-preview { color: var(--muted); font-size: 0.85rem; }
mark.search-highlight { background: var(--mark); color: inherit; padding: 0 2px; border-radius: 2px; }
.sidebar-tree ul { list-style: none; padding-left: 0.75rem; margin: 0; }
.sidebar-tree a { color: var(--fg); text-decoration: none; }
.sidebar-tree a.active { color: var(--accent); font-weight: 600; }
.dir-toggle { background: none; border: 0; padding: 0; font: inherit; cursor: pointer; }
.dir.collapsed > ul { display: none; }
.content { margin-left: var(--sidebar-width); margin-right: 240px; padding: 2rem; max-width: 960px; }
.toc { position: fixed; top: 2rem; right: 1rem; width: 220px; font-size: 0.85rem; }
.toc ul { list-style: none; padding: 0; }
.toc li.h3 { padding-left: 1rem; }
.toc a { color: var(--muted); text-decoration: none; }
.toc a.active { color: var(--accent); }
pre { overflow-x: auto; padding: 1rem; border-radius: 6px; }
.sidebar-overlay { display: none; }
@media (max-width: 900px) {
  .sidebar { transform: translateX(-100%); transition: transform 0.2s; z-index: 20; }
  .sidebar.active { transform: none; }
  .sidebar-overlay.active { display: block; position: fixed; inset: 0; background: rgba(0,0,0,0.3); z-index: 15; }
  .close-sidebar, .mobile-menu-toggle { display: inline-block; }
  .content { margin: 0; }
  .toc { display: none; }
}
`

// jsContent wires the sidebar, scroll-spy and the search box. The search
// behavior matches the Go widget package: substring match on title or
// content, minimum two characters, results in index order.
const jsContent = `(function() {
  "use strict";

  var body = document.body;
  var sidebar = document.getElementById("sidebar");
  var overlay = document.getElementById("sidebar-overlay");

  function setSidebar(open) {
    if (!sidebar || !overlay) return;
    sidebar.classList.toggle("active", open);
    overlay.classList.toggle("active", open);
  }
  var openBtn = document.querySelector(".mobile-menu-toggle");
  var closeBtn = document.querySelector(".close-sidebar");
  if (openBtn) openBtn.addEventListener("click", function() { setSidebar(true); });
  if (closeBtn) closeBtn.addEventListener("click", function() { setSidebar(false); });
  if (overlay) overlay.addEventListener("click", function() { setSidebar(false); });

  document.querySelectorAll(".dir-toggle").forEach(function(btn) {
    btn.addEventListener("click", function() {
      var li = btn.parentElement;
      var expanded = li.classList.toggle("expanded");
      li.classList.toggle("collapsed", !expanded);
      btn.setAttribute("aria-expanded", String(expanded));
    });
  });

  // Scroll-spy for the table of contents.
  var tocLinks = Array.prototype.slice.call(document.querySelectorAll("#toc-nav a"));
  if (tocLinks.length && "IntersectionObserver" in window) {
    var byId = {};
    tocLinks.forEach(function(a) { byId[a.getAttribute("href").slice(1)] = a; });
    var observer = new IntersectionObserver(function(entries) {
      entries.forEach(function(entry) {
        if (!entry.isIntersecting) return;
        tocLinks.forEach(function(a) { a.classList.remove("active"); });
        var link = byId[entry.target.id];
        if (link) link.classList.add("active");
      });
    }, { rootMargin: "0px 0px -70% 0px" });
    Object.keys(byId).forEach(function(id) {
      var el = document.getElementById(id);
      if (el) observer.observe(el);
    });
  }

  // Search.
  var input = document.getElementById("search-input");
  var results = document.getElementById("search-results");
  if (!input || !results) return;

  var marker = body.getAttribute("data-base-marker") || "";
  var indexFile = body.getAttribute("data-index-file") || "search.json";
  var limit = parseInt(body.getAttribute("data-max-results"), 10) || 5;
  var path = window.location.pathname;
  var base = marker && (path === marker || path.indexOf(marker + "/") === 0) ? marker : "";

  var index = [];
  var status = "idle";
  var retried = false;

  function load() {
    status = "loading";
    var candidates = base ? [base + "/" + indexFile, "/" + indexFile] : ["/" + indexFile];
    var attempt = function(i) {
      if (i >= candidates.length) {
        status = "failed";
        console.warn("search index unavailable", candidates);
        return;
      }
      fetch(candidates[i])
        .then(function(r) { if (!r.ok) throw new Error(r.status); return r.json(); })
        .then(function(data) { index = data; status = "loaded"; })
        .catch(function() { attempt(i + 1); });
    };
    attempt(0);
  }

  function escapeHtml(s) {
    return String(s).replace(/[&<>"']/g, function(c) {
      return { "&": "&amp;", "<": "&lt;", ">": "&gt;", '"': "&quot;", "'": "&#39;" }[c];
    });
  }

  function highlight(text, query) {
    if (!text) return "";
    if (!query) return escapeHtml(text);
    var lower = "", from = [], to = [], pos = 0;
    Array.from(text).forEach(function(ch) {
      var l = ch.toLowerCase();
      for (var k = 0; k < l.length; k++) { from.push(pos); to.push(pos + ch.length); }
      lower += l;
      pos += ch.length;
    });
    var out = "", last = 0, i = 0, at;
    while ((at = lower.indexOf(query, i)) !== -1) {
      i = at + query.length;
      var s = Math.max(from[at], last), e = to[i - 1];
      if (e <= s) continue;
      out += escapeHtml(text.slice(last, s)) + '<mark class="search-highlight">' + escapeHtml(text.slice(s, e)) + "</mark>";
      last = e;
    }
    return out + escapeHtml(text.slice(last));
  }

  function link(url) {
    if (!url) return "#";
    if (url.charAt(0) !== "/" || url.indexOf("//") === 0) return url;
    if (!base) return url;
    return base + url;
  }

  function preview(item) {
    if (item.excerpt) return item.excerpt;
    if (item.content) return Array.from(item.content.trim()).slice(0, 150).join("") + "...";
    return "";
  }

  function show(query) {
    if (index.length === 0 && status === "failed" && !retried) {
      retried = true;
      load();
    }
    var matches = [];
    for (var i = 0; i < index.length && matches.length < limit; i++) {
      var item = index[i];
      if ((item.title || "").toLowerCase().indexOf(query) !== -1 ||
          (item.content && item.content.toLowerCase().indexOf(query) !== -1)) {
        matches.push(item);
      }
    }
    if (matches.length === 0) {
      var hint = status === "loading" ? "The search index is still loading" : "Try different keywords";
      results.innerHTML = '<div class="search-item search-item-empty"><div class="search-item-title">No results found</div>' +
        '<div class="search-item-preview">' + hint + "</div></div>";
    } else {
      results.innerHTML = matches.map(function(item) {
        var p = preview(item);
        return '<a href="' + escapeHtml(link(item.url)) + '" class="search-item">' +
          '<div class="search-item-title">' + highlight(item.title, query) + "</div>" +
          '<div class="search-item-preview">' + highlight(p, query) + "</div></a>";
      }).join("");
    }
    results.classList.add("visible");
  }

  function current() { return input.value.toLowerCase().trim(); }

  input.addEventListener("input", function() {
    var q = current();
    if (Array.from(q).length < 2) { results.classList.remove("visible"); return; }
    show(q);
  });
  input.addEventListener("focus", function() {
    var q = current();
    if (Array.from(q).length >= 2) show(q);
  });
  document.addEventListener("click", function(e) {
    if (!input.contains(e.target) && !results.contains(e.target)) {
      results.classList.remove("visible");
    }
  });

  load();
})();
`
